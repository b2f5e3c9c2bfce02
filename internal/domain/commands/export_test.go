package commands

import "time"

// BuildPreview exports buildPreview for testing.
var BuildPreview = buildPreview //nolint:gochecknoglobals // test export

// WithSourcesClock replaces the clock used to stamp added package sources.
func (it *SourcesCommand) WithSourcesClock(now func() time.Time) *SourcesCommand {
	it.now = now
	return it
}

// WithVersionClock replaces the clock used for snapshot numbers.
func (it *VersionCommand) WithVersionClock(now func() time.Time) *VersionCommand {
	it.now = now
	return it
}
