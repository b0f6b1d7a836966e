package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# InternSwipe configuration
version: "1.0"

deck:
  # terminating shows "All done!" after the last card; looping starts over
  mode: terminating
  # drag distance that commits a decision
  threshold: 100
  # inputs are ignored for this long after each decision
  transition: 200ms
  # how far an exiting card travels before it disappears
  exit_offset: 300
  # offset units per terminal column when dragging with the mouse
  cell_units: 10

catalog:
  # student browses jobs, employer browses students
  role: student
  # deck files or directories of .yaml files
  paths: []
  # fall back to the built-in sample deck when no paths are given
  enable_defaults: true
  # reload the deck when a file changes
  watch: false

output:
  # json, text, markdown or csv
  summary_format: text
  # auto, always or never
  color_mode: auto
  # default, high-contrast or minimal
  theme: default
  dark_mode: false
  verbose: false
  no_emoji: false
`
}

// MinimalSampleConfig returns the smallest useful configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
deck:
  mode: terminating
catalog:
  role: student
output:
  summary_format: text
`
}
