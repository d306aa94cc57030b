package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyType       = "type"
	KeyPackage    = "package"
	KeySection    = "section"
	KeyMember     = "member"
	KeyMemberKind = "member_kind"
	KeyPath       = "path"
	KeyOutcome    = "outcome"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Type(name string) slog.Attr       { return slog.String(KeyType, name) }
func Package(name string) slog.Attr    { return slog.String(KeyPackage, name) }
func Section(s string) slog.Attr       { return slog.String(KeySection, s) }
func Member(name string) slog.Attr     { return slog.String(KeyMember, name) }
func MemberKind(kind string) slog.Attr { return slog.String(KeyMemberKind, kind) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
