// Package subtitles recovers plain dialog text from SRT content and detects
// files that are actually captured HTTP error pages.
//
// Normalize applies an ordered sequence of per-line rules (drop index lines,
// drop timestamp lines, strip markup and brackets) and collapses whitespace so
// the result feeds cleanly into language detection. CountErrorSignatures scans
// unmodified text for known HTTP error phrases; automated subtitle downloads
// that failed frequently leave an error page behind under a .srt name.
package subtitles
