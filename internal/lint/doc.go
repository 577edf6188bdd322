// Package lint defines the Markdown lint model and the built-in rule set.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture lint
//     findings against a Markdown document.
//   - Offer light-weight utilities (Reporter, Bag) that let rules emit issues
//     without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that the CLI or editor can
//     apply through internal/fix.
//
// # Scope
//
// Package lint does not perform formatting, IO beyond reading config, or any
// interactive behaviour. Rendering responsibilities live in internal/lintfmt;
// applying fixes lives in internal/fix.
//
// # Data model
//
// Issue is the central record: Severity (Info/Warning/Error), a stable Code,
// a short Message, the Primary source.Span, optional Notes and Fixes.
//
// # Rules
//
// Each rule is one file implementing the Rule interface against the Parsed
// context, which pre-computes where the frontmatter ends and which lines sit
// inside code blocks. Rules are pure line/AST scans; the only cross-line
// state in the rule set is the open/closed bit of the fence rule.
//
// Rule severities and availability are controlled by the YAML config
// (.shebang-lint.yml) at the workspace root.
package lint
