package version

import "testing"

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2024-09-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2024-09-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2025-09-01",
			expected: 365,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2024-08-31",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()

			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStringUnknown(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""

	got := String()
	if got == "" {
		t.Fatal("String() returned empty string")
	}
}
