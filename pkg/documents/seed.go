package documents

import (
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// SeedDocuments returns the initial repository contents, newest first
func SeedDocuments() []model.DocumentEntity {
	return []model.DocumentEntity{
		{
			ID:             "doc-001",
			Name:           "Q4_Financial_Report_2024.pdf",
			Type:           model.DocumentTypePDF,
			Classification: model.ClassificationRestricted,
			Size:           "2.4 MB",
			UploadDate:     "2024-12-15",
			Author:         "Sarah Jenkins (CFO)",
			Tags:           model.StringList{"Finance", "Q4", "2024"},
			CurrentVersion: "v2.0",
			Versions: model.VersionList{
				{ID: "v2", Version: "v2.0", UploadDate: "2024-12-15", UploadedBy: "Sarah Jenkins (CFO)", Size: "2.4 MB", ChangeNote: "Final audited figures"},
				{ID: "v1", Version: "v1.0", UploadDate: "2024-12-10", UploadedBy: "Sarah Jenkins (CFO)", Size: "2.2 MB", ChangeNote: "Initial draft for review"},
			},
		},
		{
			ID:             "doc-002",
			Name:           "Hop_Contract_Yakima_Valley.pdf",
			Type:           model.DocumentTypePDF,
			Classification: model.ClassificationConfidential,
			Size:           "1.1 MB",
			UploadDate:     "2025-01-10",
			Author:         "Mike Ross (Ops)",
			Tags:           model.StringList{"Supply Chain", "Contracts", "Hops"},
			CurrentVersion: "v1.0",
			Versions: model.VersionList{
				{ID: "v1", Version: "v1.0", UploadDate: "2025-01-10", UploadedBy: "Mike Ross (Ops)", Size: "1.1 MB", ChangeNote: "Signed contract"},
			},
		},
		{
			ID:             "doc-003",
			Name:           "SOP_Tank_Cleaning_v2.docx",
			Type:           model.DocumentTypeDOCX,
			Classification: model.ClassificationInternal,
			Size:           "450 KB",
			UploadDate:     "2025-01-12",
			Author:         "Dave Grohl (Head Brewer)",
			Tags:           model.StringList{"SOP", "Safety", "Production"},
			CurrentVersion: "v2.1",
			Versions: model.VersionList{
				{ID: "v3", Version: "v2.1", UploadDate: "2025-01-12", UploadedBy: "Dave Grohl", Size: "450 KB", ChangeNote: "Updated caustic cycle times"},
				{ID: "v2", Version: "v2.0", UploadDate: "2024-11-05", UploadedBy: "Dave Grohl", Size: "445 KB", ChangeNote: "Added safety protocol appendix"},
				{ID: "v1", Version: "v1.0", UploadDate: "2024-06-20", UploadedBy: "Mike Ross", Size: "400 KB", ChangeNote: "Original SOP creation"},
			},
		},
		{
			ID:             "doc-004",
			Name:           "Taproom_Menu_Spring_2025.pdf",
			Type:           model.DocumentTypePDF,
			Classification: model.ClassificationPublic,
			Size:           "5.2 MB",
			UploadDate:     "2025-01-20",
			Author:         "Marketing Team",
			Tags:           model.StringList{"Marketing", "Retail", "Spring"},
			CurrentVersion: "v1.2",
			Versions: model.VersionList{
				{ID: "v2", Version: "v1.2", UploadDate: "2025-01-20", UploadedBy: "Marketing Team", Size: "5.2 MB", ChangeNote: "Price adjustments"},
				{ID: "v1", Version: "v1.0", UploadDate: "2025-01-18", UploadedBy: "Marketing Team", Size: "5.1 MB", ChangeNote: "Initial layout"},
			},
		},
		{
			ID:             "doc-005",
			Name:           "Production_Schedule_Q1.xlsx",
			Type:           model.DocumentTypeXLSX,
			Classification: model.ClassificationInternal,
			Size:           "850 KB",
			UploadDate:     "2025-01-22",
			Author:         "Mike Ross",
			Tags:           model.StringList{"Production", "Schedule", "Planning"},
			CurrentVersion: "v1.0",
			Versions: model.VersionList{
				{ID: "v1", Version: "v1.0", UploadDate: "2025-01-22", UploadedBy: "Mike Ross", Size: "850 KB", ChangeNote: "Baseline Q1 Schedule"},
			},
		},
	}
}

// Seed loads SeedDocuments into an empty store, oldest first, so the head
// insertion of the store keeps the listed order.
func Seed(s store.DocumentStore) error {
	docs := SeedDocuments()
	for i := len(docs) - 1; i >= 0; i-- {
		if err := s.CreateDocument(docs[i]); err != nil {
			return err
		}
	}
	return nil
}
