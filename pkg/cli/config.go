package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
)

const envPrefix = "ANATREE"

// viperResolver resolves flag values from a viper instance, keyed by flag name
// (e.g. "fold-case").
type viperResolver struct {
	v *viper.Viper
}

func (r *viperResolver) Validate(_ *kong.Application) error {
	return nil
}

func (r *viperResolver) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
	if !r.v.IsSet(flag.Name) {
		return nil, nil
	}
	// slices are handed to kong as one separated value, separators inside an
	// element are escaped so kong splits on element boundaries only
	if flag.IsSlice() && flag.Tag.Sep != -1 {
		return kong.JoinEscaped(r.v.GetStringSlice(flag.Name), flag.Tag.Sep), nil
	}
	return r.v.GetString(flag.Name), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ConfigLoader is a kong.ConfigurationLoader reading a YAML (or JSON) configuration
// through viper. Keys are flag names:
//
//	dict: [words.txt, names.csv]
//	fold-case: true
//	format: json
func ConfigLoader(r io.Reader) (kong.Resolver, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, err
	}
	return &viperResolver{v: v}, nil
}

// EnvResolver resolves flags from ANATREE_* environment variables, e.g. ANATREE_FOLD_CASE=true.
func EnvResolver() kong.Resolver {
	return &viperResolver{v: newViper()}
}
