// Package validation provides the per-pass finding collector that every rule
// check in the character tree reports into.
package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity classifies a finding.
type Severity int

// Finding severities. Only Error affects validity.
const (
	Warning Severity = iota
	Error
)

// String returns the display label for s.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding is one recorded rule outcome.
type Finding struct {
	Severity Severity
	// Subject is the scope path of the reporting entity, e.g. "Asset (Kashi-dori): Property (Focus)".
	Subject string
	Message string
	// AssetID identifies the asset the finding belongs to; uuid.Nil for character-level findings.
	AssetID uuid.UUID
}

// String renders the finding as a single report line body.
func (f Finding) String() string {
	if f.Subject == "" {
		return f.Message
	}
	return f.Subject + ": " + f.Message
}

// InvalidBanner is printed by Report after the findings when at least one error was logged.
const InvalidBanner = "==============INVALID CHAR=============="

// Collector accumulates findings for one validation pass.
//
// A Collector is owned by a single pass and is not safe for concurrent use.
type Collector struct {
	newCharacter bool
	findings     []Finding
	logger       *zap.Logger
}

// NewCollector creates a Collector for one validation pass.
//
// Precondition: logger may be nil, in which case findings are not logged.
// Postcondition: Returns an empty Collector in the given rules mode.
func NewCollector(newCharacter bool, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{newCharacter: newCharacter, logger: logger}
}

// NewCharacter reports whether the pass applies creation-mode rules.
func (c *Collector) NewCharacter() bool {
	return c.newCharacter
}

// Logger returns the logger findings are mirrored to.
func (c *Collector) Logger() *zap.Logger {
	return c.logger
}

func (c *Collector) log(sev Severity, subject string, assetID uuid.UUID, msg string) {
	c.findings = append(c.findings, Finding{Severity: sev, Subject: subject, Message: msg, AssetID: assetID})
	fields := []zap.Field{
		zap.Stringer("severity", sev),
		zap.String("subject", subject),
		zap.String("message", msg),
	}
	if assetID != uuid.Nil {
		fields = append(fields, zap.Stringer("asset_id", assetID))
	}
	c.logger.Debug("validation finding", fields...)
}

// Errorf records an unscoped error.
func (c *Collector) Errorf(format string, args ...any) {
	c.log(Error, "", uuid.Nil, fmt.Sprintf(format, args...))
}

// Warnf records an unscoped warning.
func (c *Collector) Warnf(format string, args ...any) {
	c.log(Warning, "", uuid.Nil, fmt.Sprintf(format, args...))
}

// Scope returns a reporter that prefixes every finding with subject.
func (c *Collector) Scope(subject string) Scope {
	return Scope{c: c, subject: subject}
}

// Findings returns a copy of all findings in the order they were recorded.
func (c *Collector) Findings() []Finding {
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// ForAsset returns the findings recorded under the asset with the given ID, in order.
func (c *Collector) ForAsset(id uuid.UUID) []Finding {
	var out []Finding
	for _, f := range c.findings {
		if f.AssetID == id {
			out = append(out, f)
		}
	}
	return out
}

// Errors returns only the Error findings.
func (c *Collector) Errors() []Finding {
	return c.filter(Error)
}

// Warnings returns only the Warning findings.
func (c *Collector) Warnings() []Finding {
	return c.filter(Warning)
}

func (c *Collector) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range c.findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Valid reports whether no Error has been recorded. Warnings never affect validity.
func (c *Collector) Valid() bool {
	for _, f := range c.findings {
		if f.Severity == Error {
			return false
		}
	}
	return true
}

// Report writes every finding as "Severity: message" followed by the invalid
// banner if any error was recorded, and returns the verdict.
//
// Postcondition: Returns Valid(); write errors are returned alongside it.
func (c *Collector) Report(w io.Writer) (bool, error) {
	var b strings.Builder
	for _, f := range c.findings {
		fmt.Fprintf(&b, "%s: %s\n", f.Severity, f)
	}
	valid := c.Valid()
	if !valid {
		b.WriteString("\n" + InvalidBanner + "\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return valid, err
}

// Clear discards all recorded findings.
func (c *Collector) Clear() {
	c.findings = nil
}

// Scope is a lightweight view over a Collector that prefixes findings with a
// subject path. Scopes nest.
type Scope struct {
	c       *Collector
	subject string
	assetID uuid.UUID
}

// Errorf records an error under the scope's subject.
func (s Scope) Errorf(format string, args ...any) {
	s.c.log(Error, s.subject, s.assetID, fmt.Sprintf(format, args...))
}

// Warnf records a warning under the scope's subject.
func (s Scope) Warnf(format string, args ...any) {
	s.c.log(Warning, s.subject, s.assetID, fmt.Sprintf(format, args...))
}

// Scope returns a nested scope.
func (s Scope) Scope(subject string) Scope {
	if s.subject != "" {
		subject = s.subject + ": " + subject
	}
	return Scope{c: s.c, subject: subject, assetID: s.assetID}
}

// Asset returns a nested scope whose findings, and those of its own nested
// scopes, are tagged with the asset's id.
func (s Scope) Asset(id uuid.UUID, subject string) Scope {
	nested := s.Scope(subject)
	nested.assetID = id
	return nested
}

// NewCharacter reports whether the underlying pass applies creation-mode rules.
func (s Scope) NewCharacter() bool {
	return s.c.newCharacter
}

// Logger returns the underlying collector's logger.
func (s Scope) Logger() *zap.Logger {
	return s.c.logger
}
