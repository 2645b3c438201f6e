// Package refdata 负责加载进程生命周期内只读的静态参考数据：
// 行业目录/权重/依赖矩阵，以及情绪词典与反应模板。
package refdata

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

//go:embed data/*.yaml
var defaults embed.FS

// SentimentProfile 单个政策类型的情绪模板
type SentimentProfile struct {
	SampleReactions  []string `yaml:"sample_reactions"`
	NegativeKeywords []string `yaml:"negative_keywords"`
	PositiveKeywords []string `yaml:"positive_keywords"`
	NeutralKeywords  []string `yaml:"neutral_keywords"`
}

// Data 全量参考数据，加载完成后只读
type Data struct {
	Sectors           []string
	Weights           map[string]float64
	Interdependencies map[string]map[string]float64

	PositiveWords    map[string]struct{}
	NegativeWords    map[string]struct{}
	GenericReactions []string
	GenericConcerns  []string
	PolicySentiments map[model.PolicyType]SentimentProfile
}

// sectorFile sector_weights.yaml 的文件结构
type sectorFile struct {
	Sectors           []string                      `yaml:"sectors"`
	Weights           map[string]float64            `yaml:"weights"`
	Interdependencies map[string]map[string]float64 `yaml:"interdependencies"`
}

// sentimentFile sentiment_data.yaml 的文件结构
type sentimentFile struct {
	PositiveWords    []string                    `yaml:"positive_words"`
	NegativeWords    []string                    `yaml:"negative_words"`
	GenericReactions []string                    `yaml:"generic_reactions"`
	GenericConcerns  []string                    `yaml:"generic_concerns"`
	PolicySentiments map[string]SentimentProfile `yaml:"policy_sentiments"`
}

// Load 加载参考数据。dir 为空时使用内置默认数据，否则从目录读取同名文件。
// 任何加载或校验失败都包装为 model.ErrReferenceData，调用方应视为启动失败。
func Load(dir string) (*Data, error) {
	sectorRaw, err := readFile(dir, "sector_weights.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrReferenceData, err)
	}
	sentimentRaw, err := readFile(dir, "sentiment_data.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrReferenceData, err)
	}

	var sf sectorFile
	if err := yaml.Unmarshal(sectorRaw, &sf); err != nil {
		return nil, fmt.Errorf("%w: parse sector_weights.yaml: %v", model.ErrReferenceData, err)
	}
	var mf sentimentFile
	if err := yaml.Unmarshal(sentimentRaw, &mf); err != nil {
		return nil, fmt.Errorf("%w: parse sentiment_data.yaml: %v", model.ErrReferenceData, err)
	}

	d := &Data{
		Sectors:           sf.Sectors,
		Weights:           sf.Weights,
		Interdependencies: sf.Interdependencies,
		PositiveWords:     toSet(mf.PositiveWords),
		NegativeWords:     toSet(mf.NegativeWords),
		GenericReactions:  mf.GenericReactions,
		GenericConcerns:   mf.GenericConcerns,
		PolicySentiments:  make(map[model.PolicyType]SentimentProfile, len(mf.PolicySentiments)),
	}
	for name, profile := range mf.PolicySentiments {
		d.PolicySentiments[model.PolicyType(name)] = profile
	}

	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrReferenceData, err)
	}
	return d, nil
}

// readFile 优先从目录读取，目录为空则回退到内置数据
func readFile(dir, name string) ([]byte, error) {
	if dir == "" {
		return defaults.ReadFile("data/" + name)
	}
	return os.ReadFile(filepath.Join(dir, name))
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// validate 校验参考数据完整性：矩阵必须覆盖行业目录的方阵，系数在 [0,1]
func (d *Data) validate() error {
	if len(d.Sectors) == 0 {
		return fmt.Errorf("sector catalog is empty")
	}
	for _, s := range d.Sectors {
		if _, ok := d.Weights[s]; !ok {
			return fmt.Errorf("missing weight for sector %q", s)
		}
		row, ok := d.Interdependencies[s]
		if !ok {
			return fmt.Errorf("missing interdependency row for sector %q", s)
		}
		for _, t := range d.Sectors {
			coeff, ok := row[t]
			if !ok {
				return fmt.Errorf("missing interdependency %q -> %q", s, t)
			}
			if coeff < 0 || coeff > 1 {
				return fmt.Errorf("interdependency %q -> %q out of range: %v", s, t, coeff)
			}
		}
	}
	if len(d.PositiveWords) == 0 || len(d.NegativeWords) == 0 {
		return fmt.Errorf("sentiment lexicon is empty")
	}
	if len(d.GenericReactions) == 0 {
		return fmt.Errorf("generic reactions are empty")
	}
	return nil
}

// HasSector 判断行业是否在目录中
func (d *Data) HasSector(name string) bool {
	for _, s := range d.Sectors {
		if s == name {
			return true
		}
	}
	return false
}

// Profile 返回政策类型对应的情绪模板，未知类型返回 false
func (d *Data) Profile(pt model.PolicyType) (SentimentProfile, bool) {
	p, ok := d.PolicySentiments[pt]
	return p, ok
}
