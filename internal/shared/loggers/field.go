package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent_family"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId      = "partition_id"
	FieldTriggerID        = "trigger_id"
	FieldTriggerReason    = "trigger_reason"
	FieldSnapshotSequence = "snapshot_sequence"
	FieldSnapshotSource   = "snapshot_source"
	FieldRecordCount      = "record_count"
	FieldTable            = "table"
)
