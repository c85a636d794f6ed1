// Package jobhunter turns a webpage holding a job posting into a validated,
// structured job record. It prunes and sanitizes the page, converts it to
// markdown, asks a schema-constrained language model to analyze it, and
// stores the result under duplicate and capacity rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package jobhunter
