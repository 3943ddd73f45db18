package clinicsdk_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: `"2025-03-01"`, want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: `"2025-03-01T09:30:00"`, want: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{in: `"2025-03-01T09:30:00.5+10:00"`, want: time.Date(2025, 2, 28, 23, 30, 0, 500_000_000, time.UTC)},
		{in: `null`},
		{in: `""`},
		{in: `"01/03/2025"`, wantErr: true},
		{in: `20250301`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d clinicsdk.Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestDateMarshal(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)

	out, err := json.Marshal(clinicsdk.Date{Time: time.Date(2025, 3, 1, 9, 0, 0, 0, loc)})
	require.NoError(t, err)
	require.JSONEq(t, `"2025-02-28T23:00:00Z"`, string(out))

	out, err = json.Marshal(clinicsdk.Date{})
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}

func TestBookAppointmentRequestWireFormat(t *testing.T) {
	var req clinicsdk.BookAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"patientID":3,"doctorID":7,"date":"2025-03-01","time":"10:00"}`), &req))

	require.Equal(t, int64(3), req.PatientID)
	require.Equal(t, int64(7), req.DoctorID)
	require.Equal(t, "10:00", req.Time)
	require.Equal(t, "2025-03-01", req.Date.Format("2006-01-02"))
}
