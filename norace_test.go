//go:build !race

package nanowire

const raceEnabled = false
