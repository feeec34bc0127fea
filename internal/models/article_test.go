// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestArticleIsPublished verifies that IsPublished returns true only for
// the "published" status.
func TestArticleIsPublished(t *testing.T) {
	tests := []struct {
		name   string
		status ArticleStatus
		want   bool
	}{
		{name: "published", status: ArticleStatusPublished, want: true},
		{name: "draft", status: ArticleStatusDraft, want: false},
		{name: "empty status", status: ArticleStatus(""), want: false},
		{name: "unknown status", status: ArticleStatus("archived"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Article{Status: tt.status}
			if got := a.IsPublished(); got != tt.want {
				t.Errorf("Article{Status: %q}.IsPublished() = %v, want %v",
					tt.status, got, tt.want)
			}
		})
	}
}
