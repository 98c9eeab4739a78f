// Package connectors contains the source connector implementations.
// Each subpackage implements driven.Connector for one source type:
//
//   - filesystem: walks a local directory of scripts, with fsnotify
//     watch support for serve mode
//   - github: fetches matching files from repositories and gists via
//     the GitHub API
//   - web: fetches configured URLs, extracting code blocks from HTML
//
// Connectors stream domain.RawScript values over a channel; naming and
// storage happen downstream in the vault service.
package connectors
