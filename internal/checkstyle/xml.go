package checkstyle

import (
	"encoding/xml"
	"fmt"
	"io"
)

// auditDocument mirrors the Checkstyle XML audit format:
// <checkstyle><file name="..."><error .../></file></checkstyle>.
type auditDocument struct {
	XMLName xml.Name    `xml:"checkstyle"`
	Files   []auditFile `xml:"file"`
}

type auditFile struct {
	Name   string       `xml:"name,attr"`
	Errors []auditError `xml:"error"`
}

type auditError struct {
	Line     int    `xml:"line,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// DecodeAudit decodes a Checkstyle XML audit stream into findings,
// preserving document order.
func DecodeAudit(r io.Reader) ([]Finding, error) {
	var doc auditDocument

	err := xml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode checkstyle audit: %w", err)
	}

	var findings []Finding

	for _, file := range doc.Files {
		for _, e := range file.Errors {
			findings = append(findings, Finding{
				File:     file.Name,
				Source:   e.Source,
				Line:     e.Line,
				Message:  e.Message,
				Severity: e.Severity,
			})
		}
	}

	return findings, nil
}
