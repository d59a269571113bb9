// Package config loads the optional YAML project configuration and turns
// it into typed emitter option records. Unknown styles and dialects are
// rejected here, at the configuration boundary, so the emitters never see
// a malformed option set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/polytyper/polytyper/internal/emitter"
	"github.com/polytyper/polytyper/internal/errors"
)

// Config represents the complete configuration for polytyper
type Config struct {
	Language string `yaml:"language"`
	RootName string `yaml:"root_name"`
	// Optional applies the target language's optional wrapper to every
	// emitted field, for languages that have one.
	Optional bool `yaml:"optional"`

	TypeScript TypeScriptConfig `yaml:"typescript"`
	JavaScript JavaScriptConfig `yaml:"javascript"`
	Go         GoConfig         `yaml:"go"`
	Python     PythonConfig     `yaml:"python"`
	Rust       RustConfig       `yaml:"rust"`
	Java       JavaConfig       `yaml:"java"`
	CSharp     CSharpConfig     `yaml:"csharp"`
	Kotlin     KotlinConfig     `yaml:"kotlin"`
	Swift      SwiftConfig      `yaml:"swift"`
	PHP        PHPConfig        `yaml:"php"`
}

// TypeScriptConfig mirrors emitter.TypeScriptOptions.
type TypeScriptConfig struct {
	Style    string `yaml:"style"`
	Export   bool   `yaml:"export"`
	Readonly bool   `yaml:"readonly"`
	Strict   bool   `yaml:"strict"`
}

// JavaScriptConfig mirrors emitter.JavaScriptOptions.
type JavaScriptConfig struct {
	Style     string `yaml:"style"`
	Factory   bool   `yaml:"factory"`
	Validator bool   `yaml:"validator"`
}

// GoConfig mirrors emitter.GoOptions.
type GoConfig struct {
	Package        string `yaml:"package"`
	JSONTags       bool   `yaml:"json_tags"`
	OmitEmpty      bool   `yaml:"omit_empty"`
	PointerObjects bool   `yaml:"pointer_objects"`
}

// PythonConfig mirrors emitter.PythonOptions.
type PythonConfig struct {
	Style  string `yaml:"style"`
	Frozen bool   `yaml:"frozen"`
	Slots  bool   `yaml:"slots"`
	KwOnly bool   `yaml:"kw_only"`
}

// RustConfig mirrors emitter.RustOptions.
type RustConfig struct {
	Derives    []string `yaml:"derives"`
	BoxObjects bool     `yaml:"box_objects"`
}

// JavaConfig mirrors emitter.JavaOptions.
type JavaConfig struct {
	Style          string `yaml:"style"`
	Annotations    string `yaml:"annotations"`
	EqualsHashCode bool   `yaml:"equals_hash_code"`
}

// CSharpConfig mirrors emitter.CSharpOptions.
type CSharpConfig struct {
	Style      string `yaml:"style"`
	Serializer string `yaml:"serializer"`
	Namespace  string `yaml:"namespace"`
}

// KotlinConfig mirrors emitter.KotlinOptions.
type KotlinConfig struct {
	DataClass     bool   `yaml:"data_class"`
	Annotations   string `yaml:"annotations"`
	DefaultValues bool   `yaml:"default_values"`
}

// SwiftConfig mirrors emitter.SwiftOptions.
type SwiftConfig struct {
	Style string `yaml:"style"`
}

// PHPConfig mirrors emitter.PHPOptions.
type PHPConfig struct {
	Style       string `yaml:"style"`
	Readonly    bool   `yaml:"readonly"`
	StrictTypes bool   `yaml:"strict_types"`
	Namespace   string `yaml:"namespace"`
}

// NewConfig creates a new Config whose values match the emitter defaults.
func NewConfig() *Config {
	return &Config{
		Language: string(emitter.LangTypeScript),
		RootName: emitter.DefaultRootName,
		TypeScript: TypeScriptConfig{
			Style:  string(emitter.TypeScriptInterface),
			Export: true,
			Strict: true,
		},
		JavaScript: JavaScriptConfig{
			Style: string(emitter.JavaScriptJSDoc),
		},
		Go: GoConfig{
			Package:  "main",
			JSONTags: true,
		},
		Python: PythonConfig{
			Style: string(emitter.PythonDataclass),
		},
		Rust: RustConfig{
			Derives: []string{"Debug", "Clone", "Serialize", "Deserialize"},
		},
		Java: JavaConfig{
			Style:       string(emitter.JavaRecord),
			Annotations: string(emitter.JavaJackson),
		},
		CSharp: CSharpConfig{
			Style:      string(emitter.CSharpClass),
			Serializer: string(emitter.CSharpSystemTextJson),
		},
		Kotlin: KotlinConfig{
			DataClass:   true,
			Annotations: string(emitter.KotlinKotlinx),
		},
		Swift: SwiftConfig{
			Style: string(emitter.SwiftStruct),
		},
		PHP: PHPConfig{
			Style:       string(emitter.PHPPromotion),
			StrictTypes: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and
// its parents.
func FindConfigFile() string {
	configNames := []string{".polytyper.yml", ".polytyper.yaml", "polytyper.yml", "polytyper.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Options builds the typed option record for a language from the config.
func (c *Config) Options(lang emitter.Language) (emitter.Options, error) {
	switch lang {
	case emitter.LangTypeScript:
		style, err := tsStyle(c.TypeScript.Style)
		if err != nil {
			return nil, err
		}
		return emitter.TypeScriptOptions{
			RootName:       c.RootName,
			Style:          style,
			Export:         c.TypeScript.Export,
			Readonly:       c.TypeScript.Readonly,
			Strict:         c.TypeScript.Strict,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangJavaScript:
		style, err := jsStyle(c.JavaScript.Style)
		if err != nil {
			return nil, err
		}
		return emitter.JavaScriptOptions{
			RootName:  c.RootName,
			Style:     style,
			Factory:   c.JavaScript.Factory,
			Validator: c.JavaScript.Validator,
		}, nil
	case emitter.LangGo:
		return emitter.GoOptions{
			RootName:       c.RootName,
			Package:        c.Go.Package,
			JSONTags:       c.Go.JSONTags,
			OmitEmpty:      c.Go.OmitEmpty || c.Optional,
			PointerObjects: c.Go.PointerObjects,
		}, nil
	case emitter.LangPython:
		style, err := pythonStyle(c.Python.Style)
		if err != nil {
			return nil, err
		}
		return emitter.PythonOptions{
			RootName:       c.RootName,
			Style:          style,
			Frozen:         c.Python.Frozen,
			Slots:          c.Python.Slots,
			KwOnly:         c.Python.KwOnly,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangRust:
		derives := make([]string, len(c.Rust.Derives))
		copy(derives, c.Rust.Derives)
		return emitter.RustOptions{
			RootName:       c.RootName,
			Derives:        derives,
			BoxObjects:     c.Rust.BoxObjects,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangJava:
		style, err := javaStyle(c.Java.Style)
		if err != nil {
			return nil, err
		}
		annotations, err := javaAnnotations(c.Java.Annotations)
		if err != nil {
			return nil, err
		}
		return emitter.JavaOptions{
			RootName:       c.RootName,
			Style:          style,
			Annotations:    annotations,
			EqualsHashCode: c.Java.EqualsHashCode,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangCSharp:
		style, err := csharpStyle(c.CSharp.Style)
		if err != nil {
			return nil, err
		}
		serializer, err := csharpSerializer(c.CSharp.Serializer)
		if err != nil {
			return nil, err
		}
		return emitter.CSharpOptions{
			RootName:       c.RootName,
			Style:          style,
			Serializer:     serializer,
			Namespace:      c.CSharp.Namespace,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangKotlin:
		annotations, err := kotlinAnnotations(c.Kotlin.Annotations)
		if err != nil {
			return nil, err
		}
		return emitter.KotlinOptions{
			RootName:       c.RootName,
			DataClass:      c.Kotlin.DataClass,
			Annotations:    annotations,
			DefaultValues:  c.Kotlin.DefaultValues,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangSwift:
		style, err := swiftStyle(c.Swift.Style)
		if err != nil {
			return nil, err
		}
		return emitter.SwiftOptions{
			RootName:       c.RootName,
			Style:          style,
			OptionalFields: c.Optional,
		}, nil
	case emitter.LangPHP:
		style, err := phpStyle(c.PHP.Style)
		if err != nil {
			return nil, err
		}
		return emitter.PHPOptions{
			RootName:       c.RootName,
			Style:          style,
			Readonly:       c.PHP.Readonly,
			StrictTypes:    c.PHP.StrictTypes,
			Namespace:      c.PHP.Namespace,
			OptionalFields: c.Optional,
		}, nil
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unsupported target language %q", lang), errors.ErrUnknownLanguage)
	}
}

func tsStyle(s string) (emitter.TypeScriptStyle, error) {
	switch emitter.TypeScriptStyle(s) {
	case emitter.TypeScriptInterface, emitter.TypeScriptTypeAlias:
		return emitter.TypeScriptStyle(s), nil
	}
	return "", badValue("typescript.style", s)
}

func jsStyle(s string) (emitter.JavaScriptStyle, error) {
	switch emitter.JavaScriptStyle(s) {
	case emitter.JavaScriptJSDoc, emitter.JavaScriptClass:
		return emitter.JavaScriptStyle(s), nil
	}
	return "", badValue("javascript.style", s)
}

func pythonStyle(s string) (emitter.PythonStyle, error) {
	switch emitter.PythonStyle(s) {
	case emitter.PythonDataclass, emitter.PythonTypedDict:
		return emitter.PythonStyle(s), nil
	}
	return "", badValue("python.style", s)
}

func javaStyle(s string) (emitter.JavaStyle, error) {
	switch emitter.JavaStyle(s) {
	case emitter.JavaRecord, emitter.JavaPOJO, emitter.JavaLombok:
		return emitter.JavaStyle(s), nil
	}
	return "", badValue("java.style", s)
}

func javaAnnotations(s string) (emitter.JavaAnnotations, error) {
	switch emitter.JavaAnnotations(s) {
	case emitter.JavaJackson, emitter.JavaGson, emitter.JavaMoshi, emitter.JavaNone:
		return emitter.JavaAnnotations(s), nil
	}
	return "", badValue("java.annotations", s)
}

func csharpStyle(s string) (emitter.CSharpStyle, error) {
	switch emitter.CSharpStyle(s) {
	case emitter.CSharpRecord, emitter.CSharpClass:
		return emitter.CSharpStyle(s), nil
	}
	return "", badValue("csharp.style", s)
}

func csharpSerializer(s string) (emitter.CSharpSerializer, error) {
	switch emitter.CSharpSerializer(s) {
	case emitter.CSharpSystemTextJson, emitter.CSharpNewtonsoft, emitter.CSharpDataContract:
		return emitter.CSharpSerializer(s), nil
	}
	return "", badValue("csharp.serializer", s)
}

func kotlinAnnotations(s string) (emitter.KotlinAnnotations, error) {
	switch emitter.KotlinAnnotations(s) {
	case emitter.KotlinKotlinx, emitter.KotlinGson, emitter.KotlinMoshi, emitter.KotlinJackson, emitter.KotlinNone:
		return emitter.KotlinAnnotations(s), nil
	}
	return "", badValue("kotlin.annotations", s)
}

func swiftStyle(s string) (emitter.SwiftStyle, error) {
	switch emitter.SwiftStyle(s) {
	case emitter.SwiftStruct, emitter.SwiftClass:
		return emitter.SwiftStyle(s), nil
	}
	return "", badValue("swift.style", s)
}

func phpStyle(s string) (emitter.PHPStyle, error) {
	switch emitter.PHPStyle(s) {
	case emitter.PHPPromotion, emitter.PHPClassic:
		return emitter.PHPStyle(s), nil
	}
	return "", badValue("php.style", s)
}

func badValue(field, value string) error {
	return errors.NewConfigError(fmt.Sprintf("invalid value %q for %s", value, field), nil)
}
