package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsOfLegalAge(t *testing.T) {
	t.Parallel()

	reference := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      bool
	}{
		{
			name:      "eighteenth birthday today counts",
			birthDate: time.Date(2008, time.August, 29, 0, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "one day short of eighteen",
			birthDate: time.Date(2008, time.August, 30, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "birthday later this year",
			birthDate: time.Date(2008, time.December, 1, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "birthday earlier this year",
			birthDate: time.Date(2008, time.January, 10, 0, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "clearly an adult",
			birthDate: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "zero birth date never passes",
			birthDate: time.Time{},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := &User{BirthDate: tt.birthDate}
			assert.Equal(t, tt.want, user.IsOfLegalAge(reference))
		})
	}
}

func TestUser_WithoutPassword(t *testing.T) {
	t.Parallel()

	user := &User{Username: "gamer01", Password: "some-hash"}
	stripped := user.WithoutPassword()

	assert.Empty(t, stripped.Password)
	assert.Equal(t, "some-hash", user.Password, "the original must stay intact")
	assert.Equal(t, user.Username, stripped.Username)
}
