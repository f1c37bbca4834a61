package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAIFlags(t *testing.T) {
	flags := aiFlags()

	find := func(name string) *cli.StringFlag {
		for _, f := range flags {
			if sf, ok := f.(*cli.StringFlag); ok && sf.Name == name {
				return sf
			}
		}
		return nil
	}

	t.Run("host has local default", func(t *testing.T) {
		hostFlag := find("host")
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
		assert.Contains(t, hostFlag.EnvVars, "CARVISOR_HOST")
	})

	t.Run("token reads OPENAI_API_KEY", func(t *testing.T) {
		tokenFlag := find("token")
		require.NotNil(t, tokenFlag)
		assert.Contains(t, tokenFlag.EnvVars, "OPENAI_API_KEY")
	})

	t.Run("models have defaults", func(t *testing.T) {
		assert.Equal(t, "qwen2.5:3b", find("chat-model").Value)
		assert.Equal(t, "embeddinggemma", find("embedding-model").Value)
	})
}

func TestAIConfigFromFlags(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("host", "http://models.example.com", "")
	set.String("chat-model", "gpt-4o-mini", "")
	set.String("embedding-model", "text-embedding-3-small", "")
	set.String("token", "secret", "")
	c := cli.NewContext(cli.NewApp(), set, nil)

	config, err := aiConfigFromFlags(c)
	require.NoError(t, err)

	// Validate normalizes hosts to include the /v1 suffix.
	assert.Equal(t, "http://models.example.com/v1", config.ChatHost)
	assert.Equal(t, "http://models.example.com/v1", config.EmbeddingHost)
	assert.Equal(t, "gpt-4o-mini", config.ChatModel)
	assert.Equal(t, "text-embedding-3-small", config.EmbeddingModel)
	assert.Equal(t, "secret", config.Token)
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			assert.NoError(t, newApp().Run([]string{"test", "--log-level", level}), level)
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestReembedCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "carvisor",
		Commands: []*cli.Command{
			{
				Name:   "reembed",
				Action: reembedCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Required: true,
					},
				),
			},
		},
	}

	t.Run("missing db flag fails", func(t *testing.T) {
		err := app.Run([]string{"carvisor", "reembed"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})
}
