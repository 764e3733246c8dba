package base

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/wrike/internal/config"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// NewTestCommand returns a Command whose client is built over transport and
// whose UI records output. No configuration file is read unless a test
// writes one to the returned Command's Fs.
func NewTestCommand(t testing.TB, transport wrike.Transport) (*Command, *cli.MockUi) {
	t.Helper()

	t.Setenv("WRIKE_CONFIG", "")
	t.Setenv(config.TokenEnvVar, "")

	ui := cli.NewMockUi()
	c := &Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		Fs:  afero.NewMemMapFs(),
		NewClient: func(_ *config.Config, log hclog.Logger) (*wrike.Client, error) {
			return wrike.NewClient(wrike.ClientConfig{
				Transport: transport,
				Logger:    log,
			})
		},
	}

	return c, ui
}
