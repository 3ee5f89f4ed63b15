// Package override implements the expert-mode state machine: per
// artifact, output is either a pure function of the configuration or a
// caller-edited payload. Entering override mode seeds the payload from
// the current generated output so hand-editing never starts blank;
// leaving it discards the payload entirely so stale text can never be
// silently resurrected.
package override

import (
	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/metadata"
	"github.com/inkpress/typeset/internal/preamble"
)

// Artifact names one of the two compiler outputs.
type Artifact int

const (
	ArtifactMetadata Artifact = iota
	ArtifactPreamble
)

// String returns the artifact name.
func (a Artifact) String() string {
	switch a {
	case ArtifactMetadata:
		return "metadata"
	case ArtifactPreamble:
		return "preamble"
	default:
		return "unknown"
	}
}

// State is the per-artifact mode.
type State int

const (
	StateGenerated State = iota
	StateOverridden
)

// String returns the state name.
func (s State) String() string {
	if s == StateOverridden {
		return "overridden"
	}
	return "generated"
}

// Controller owns the expert-mode transitions for one configuration. The
// two artifacts transition independently: hand-editing the preamble while
// the metadata block stays generated is a supported state.
type Controller struct {
	cfg      *config.TemplateConfiguration
	metadata *metadata.Generator
	preamble *preamble.Generator
}

// NewController wires a controller over a configuration and the two
// generators.
func NewController(cfg *config.TemplateConfiguration, mg *metadata.Generator, pg *preamble.Generator) *Controller {
	return &Controller{cfg: cfg, metadata: mg, preamble: pg}
}

// State reports the current mode of an artifact. A set flag with an
// empty payload still counts as overridden; the payload is simply empty.
func (c *Controller) State(a Artifact) State {
	em := c.cfg.ExpertMode
	if a == ArtifactMetadata && em.YAMLOverride {
		return StateOverridden
	}
	if a == ArtifactPreamble && em.LaTeXOverride {
		return StateOverridden
	}
	return StateGenerated
}

// EnterOverride switches an artifact to overridden mode, capturing the
// current generated output as the starting point for hand-editing. A
// second call while already overridden keeps the existing payload.
func (c *Controller) EnterOverride(a Artifact, m *metadata.Manuscript) {
	if c.State(a) == StateOverridden {
		return
	}
	switch a {
	case ArtifactMetadata:
		c.cfg.ExpertMode.CustomYAML = c.metadata.Generate(c.cfg, m)
		c.cfg.ExpertMode.YAMLOverride = true
	case ArtifactPreamble:
		c.cfg.ExpertMode.CustomLaTeX = c.preamble.Generate(c.cfg)
		c.cfg.ExpertMode.LaTeXOverride = true
	}
}

// ExitOverride switches an artifact back to generated mode and clears the
// payload, not merely hides it: re-entering override mode afterwards
// starts from a fresh generation.
func (c *Controller) ExitOverride(a Artifact) {
	switch a {
	case ArtifactMetadata:
		c.cfg.ExpertMode.YAMLOverride = false
		c.cfg.ExpertMode.CustomYAML = ""
	case ArtifactPreamble:
		c.cfg.ExpertMode.LaTeXOverride = false
		c.cfg.ExpertMode.CustomLaTeX = ""
	}
}

// SetCustom replaces the payload of an overridden artifact with edited
// text. Calling it while the artifact is generated is a no-op: a cleared
// flag means the payload is dead.
func (c *Controller) SetCustom(a Artifact, text string) {
	if c.State(a) != StateOverridden {
		return
	}
	switch a {
	case ArtifactMetadata:
		c.cfg.ExpertMode.CustomYAML = text
	case ArtifactPreamble:
		c.cfg.ExpertMode.CustomLaTeX = text
	}
}

// Output returns the authoritative text for an artifact in its current
// mode. Generation itself already honors the override flags; Output is
// the single entry point callers use so mode decisions stay here.
func (c *Controller) Output(a Artifact, m *metadata.Manuscript) string {
	switch a {
	case ArtifactMetadata:
		return c.metadata.Generate(c.cfg, m)
	case ArtifactPreamble:
		return c.preamble.Generate(c.cfg)
	default:
		return ""
	}
}
