// SPDX-License-Identifier: MPL-2.0

package scan

const (
	// SeverityInfo indicates a note about normal skipping behavior.
	SeverityInfo Severity = "info"
	// SeverityWarning indicates a recoverable scan problem; the affected
	// document or entry was skipped and the scan continued.
	SeverityWarning Severity = "warning"
)

const (
	// CodeVanillaSkipped is emitted when a declarations document owned by
	// the vanilla namespace is skipped.
	CodeVanillaSkipped = "vanilla_document_skipped"
	// CodeNamespaceUndetermined is emitted when a document's owning
	// namespace cannot be derived from its location.
	CodeNamespaceUndetermined = "namespace_undetermined"
	// CodeDocumentUnreadable is emitted when a declarations document
	// cannot be read or parsed.
	CodeDocumentUnreadable = "document_unreadable"
	// CodeScanRestarted is emitted when a consumed scanner is iterated
	// again; a fresh scanner is required per run.
	CodeScanRestarted = "scan_restarted"
)

type (
	// Severity is a scan diagnostic level.
	Severity string

	// Diagnostic is a structured, non-fatal scan finding returned to the
	// caller instead of being written to stderr, so the CLI layer owns
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier.
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path involved (optional).
		Path string
		// Cause is the underlying error (optional).
		Cause error
	}
)
