// Package ui implements the interactive playback client using bubbletea's
// Elm architecture.
//
// The TUI walks through a short workflow:
//  1. [GeneratingView] : the participant preferences are sent to the
//     aggregator and the client waits for the shuffled playlist
//  2. [PlayerView] : browse the candidate list, jump to entries, step
//     backward, shuffle forward, toggle pause, and drop tracks the player
//     rejects
//  3. [EmptyView] / [ExhaustedView] / [ErrorView] : terminal screens for "no
//     matches", "nothing left playable" and transport failures, each offering
//     a regenerate shortcut
//
// The [Model] implements the standard Init/Update/View pattern. All playlist
// and cursor mutations go through the playback [player.Controller]; the view
// only mirrors its state.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, n/b, space, x, r,
// q) with contextual help via charmbracelet/bubbles/help.
package ui
