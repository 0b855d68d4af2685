package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ballmer/internal/config"
)

type LoggerTestSuite struct {
	suite.Suite
	previous zerolog.Level
}

func (s *LoggerTestSuite) SetupTest() {
	s.previous = zerolog.GlobalLevel()
}

func (s *LoggerTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(s.previous)
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestLevelIgnoresCase() {
	for level, expected := range map[string]zerolog.Level{
		"DEBUG": zerolog.DebugLevel,
		"Warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	} {
		_, cleanup, err := setupLogger(config.LoggingConfig{Level: level, Format: "json"})
		s.Require().NoError(err)
		cleanup()

		s.Equal(expected, zerolog.GlobalLevel(), level)
	}
}

func (s *LoggerTestSuite) TestTextFormatIgnoresCase() {
	path := filepath.Join(s.T().TempDir(), "ballmer.log")

	logger, cleanup, err := setupLogger(config.LoggingConfig{Level: "info", Format: "TEXT", File: path})
	s.Require().NoError(err)
	logger.Info().Msg("plan created")
	cleanup()

	written, err := os.ReadFile(path)
	s.Require().NoError(err)

	line := strings.TrimSpace(string(written))
	s.Contains(line, "plan created")
	s.False(strings.HasPrefix(line, "{"), line)
}
