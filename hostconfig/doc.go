// Package hostconfig defines the host-level options consulted by the
// validator, renderer, and dispatcher: supported schema version,
// interactivity support, element/action allow-lists, action-count limits,
// and show-card presentation mode.
//
// Hosts construct a Config once per process or session, before parsing or
// rendering begins, and treat it as read-only afterwards. Configuration can
// be built in code starting from Default(), or loaded from JSON or YAML
// documents supplied by the embedding application.
//
// Example:
//
//	cfg := hostconfig.Default()
//	cfg.SupportedVersion = "1.2"
//	cfg.MaxActions = 3
//	cfg.SupportedActionTypes = []string{"Action.OpenUrl", "Action.Submit"}
//
//	errs := card.Validate(parsed, cfg)
package hostconfig
