package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogRegistryLevels(t *testing.T) {
	registry, err := NewLogRegistry("APIClient=debug,*=warning")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, registry.GetLogLevel("APIClient"))
	require.Equal(t, logrus.WarnLevel, registry.GetLogLevel("LegalEntityService"))

	registry, err = NewLogRegistry("")
	require.NoError(t, err)
	require.Equal(t, defaultLogLevel, registry.GetLogLevel("anything"))
}

func TestLogRegistryInvalidConfig(t *testing.T) {
	_, err := NewLogRegistry("APIClient")
	require.Error(t, err)
	_, err = NewLogRegistry("APIClient=loud")
	require.Error(t, err)
}

func TestLogrusLogFactoryWritesSystemField(t *testing.T) {
	registry, err := NewLogRegistry("")
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	log := MakeLogrusLogFactory(registry, buf, &logrus.JSONFormatter{})("LegalEntityService")

	log.WithField("legal_entity_id", "LE123").Infof("created %s", "thing")

	line := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "LegalEntityService", line["system"])
	require.Equal(t, "LE123", line["legal_entity_id"])
	require.Equal(t, "created thing", line["msg"])
}

func TestSetLogLevelUpdatesRegisteredLogger(t *testing.T) {
	registry, err := NewLogRegistry("")
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	log := MakeLogrusLogFactory(registry, buf, &logrus.TextFormatter{})("APIClient")

	log.Debug("hidden")
	require.Zero(t, buf.Len())

	registry.SetLogLevel("APIClient", logrus.DebugLevel)
	log.Debug("visible")
	require.Contains(t, buf.String(), "visible")
}
