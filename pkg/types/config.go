package types

// BackendKind selects the language-model API used for extraction calls.
type BackendKind string

const (
	// BackendAuto infers the backend from the model identifier.
	BackendAuto      BackendKind = "auto"
	BackendOllama    BackendKind = "ollama"
	BackendAnthropic BackendKind = "anthropic"
	BackendGemini    BackendKind = "gemini"
)

// Valid reports whether k names a known backend.
func (k BackendKind) Valid() bool {
	switch k {
	case BackendAuto, BackendOllama, BackendAnthropic, BackendGemini:
		return true
	}
	return false
}

// RenameConfig holds the settings for one batch rename invocation. It is
// built from parsed CLI arguments and config values; nothing reads it at
// import time.
type RenameConfig struct {
	// InputDir is the directory holding the to-be-renamed PDFs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory renamed PDFs are moved into. It must
	// already exist; the batch refuses to start otherwise.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Model is the language-model identifier (e.g. "llama3.2",
	// "claude-sonnet-4-5", "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// DateFormat is the strftime pattern for the date prefixed to the
	// filename (e.g. "%Y%m%d").
	DateFormat string `json:"date_format" yaml:"date_format"`

	// Backend selects the model API. BackendAuto picks by Model prefix.
	Backend BackendKind `json:"backend" yaml:"backend"`

	// OllamaURL is the base URL of the local Ollama server.
	OllamaURL string `json:"ollama_url" yaml:"ollama_url"`

	// APIKey authenticates hosted backends (Anthropic, Gemini).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// HistoryDB is the path of the SQLite rename ledger. Empty disables
	// the ledger; the pipeline then keeps no state beyond the filesystem.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// ReportPath, when set, receives a YAML batch report after the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// LogFile, when set, receives a copy of all log output.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}
