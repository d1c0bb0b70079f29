// Package core defines the shared language of the transfer system.
//
// This package contains:
//   - Domain entities (Institution, Course, ArticulationRow)
//   - Lookup request and result types, including the wire-level ResultItem union
//   - Service interfaces (Adapter, InstitutionCatalog, CourseCatalog, ArticulationTable, Dataset)
//   - Error kinds shared by every layer
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
