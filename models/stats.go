// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind selects the entity counted by the stats queries.
type Kind string

const (
	KindUsers Kind = "users"
	KindFiles Kind = "files"
)

// Stats is the dashboard view of the metadata store.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// UploadList is the response of the personal uploads view.
type UploadList struct {
	Files  []FileRecord `json:"files"`
	Length int          `json:"length"`
}
