package create_booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/ptr"
)

func TestValidateRequest_Limits(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{name: "largest group", mutate: func(r *Request) { r.Participants = domain.MaxParticipantsLimit }},
		{name: "group over limit", mutate: func(r *Request) { r.Participants = domain.MaxParticipantsLimit + 1 }, wantErr: true},
		{name: "empty group", mutate: func(r *Request) { r.Participants = 0 }, wantErr: true},
		{name: "longest notes", mutate: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("é", domain.MaxNotesLength)) }},
		{name: "notes over limit", mutate: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) }, wantErr: true},
		{name: "no user", mutate: func(r *Request) { r.UserID = 0 }, wantErr: true},
		{name: "no start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: true},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "9h30" }, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := request(2, false)
			tc.mutate(req)

			err := validateRequest(req)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
