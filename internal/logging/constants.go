package logging

// Standardized field names for structured logging.
const (
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldInputDir    = "input_dir"
	FieldOutputDir   = "output_dir"
	FieldFromFormat  = "from_format"
	FieldToFormat    = "to_format"
	FieldFormat      = "format"
	FieldStage       = "stage"
	FieldCount       = "count"
	FieldBytes       = "bytes"
	FieldFailed      = "failed"
	FieldDuration    = "duration_ms"
	FieldConfigFile  = "config_file"
	FieldFormatValue = "format_value"
)
