// Package reader assembles the section, varint, langtable, mwmtags, and
// format packages into the full MWM section readers: version,
// header, rgninfo, metaidx+meta, chrysler (cross-mwm routing), and the
// dat feature iterator, plus the standalone types.txt loader.
//
// Grounded on original_source/mwm/mwm.py's MWM class, one method per
// section, each seeking its tag and then driving the same Cursor-based
// primitives the varint package exports. Reader's functional-options
// construction (Option, WithTypesPath) follows the pattern mebo's
// encoder configs use (blob/numeric_encoder_config.go), minus the
// internal/options builder helper — a single small struct and closures
// cover the one optional setting this reader needs.
package reader
