package logging

import (
	"fmt"

	"jobdeck/internal/logging/adapters"
	"jobdeck/internal/logging/types"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration. With no
// adapters configured it falls back to a single JSON stdout adapter.
func (m *Manager) Initialize(level, format string, adapterConfigs []types.AdapterConfig) error {
	m.logger.SetLevel(ParseLogLevel(level))

	if len(adapterConfigs) == 0 {
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: format})
		return m.logger.AddAdapter(adapter)
	}

	for _, ac := range adapterConfigs {
		if !ac.Enabled {
			continue
		}

		adapter, err := createAdapter(ac)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}

		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
		}
	}

	return nil
}

// createAdapter creates a logging adapter based on the provided configuration
func createAdapter(ac types.AdapterConfig) (types.LogAdapter, error) {
	switch ac.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(ac.Name, adapters.StdoutConfig{
			Format: getStringOption(ac.Options, "format", "json"),
		}), nil
	case "file":
		config := adapters.FileConfig{
			FilePath:   getStringOption(ac.Options, "file_path", ""),
			Format:     getStringOption(ac.Options, "format", "json"),
			CreateDirs: getBoolOption(ac.Options, "create_dirs", true),
		}
		if config.FilePath == "" {
			return nil, fmt.Errorf("file_path is required for file adapter")
		}
		return adapters.NewFileAdapter(ac.Name, config)
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", ac.Type)
	}
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(level, format string, adapterConfigs []types.AdapterConfig) error {
	globalManager = NewManager()
	return globalManager.Initialize(level, format, adapterConfigs)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		manager := NewManager()
		adapter := adapters.NewStdoutAdapter("fallback_stdout", adapters.StdoutConfig{Format: "json"})
		manager.logger.AddAdapter(adapter)
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with a request ID field attached
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

// Option helpers

func getStringOption(options map[string]interface{}, key string, defaultValue string) string {
	if value, exists := options[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := options[key]; exists {
		if boolVal, ok := value.(bool); ok {
			return boolVal
		}
	}
	return defaultValue
}
