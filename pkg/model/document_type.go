package model

import (
	"path/filepath"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type DocumentType -trimprefix DocumentType -transform upper -json -yaml -sql -output document_type.gen.go

type DocumentType int

const (
	DocumentTypePDF DocumentType = iota + 1
	DocumentTypeDOCX
	DocumentTypeXLSX
	DocumentTypeIMG
)

// DocumentTypeFor maps a file name to its display type. Only an extension
// naming a type exactly (in any case) is kept; anything else is shown as PDF.
func DocumentTypeFor(name string) DocumentType {
	switch strings.ToUpper(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "DOCX":
		return DocumentTypeDOCX
	case "XLSX":
		return DocumentTypeXLSX
	case "IMG":
		return DocumentTypeIMG
	default:
		return DocumentTypePDF
	}
}
