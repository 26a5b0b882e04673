// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
//
// AIFF is the last fallback container the sound system probes for an asset
// name. Only 16-bit PCM is accepted.
package aiff
