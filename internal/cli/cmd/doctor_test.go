package cmd

import (
	"testing"

	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorReport_MapsRuntimeAndServices(t *testing.T) {
	out := &usecase.DiagnoseOutput{
		OK: true,
		Runtime: []usecase.RuntimeDependencyStatus{
			{DisplayName: "GTK4", Installed: true, Version: "4.18", RequiredVersion: "4.14", OK: true},
		},
		PortalChecked:   true,
		PortalAvailable: false,
		NetworkChecked:  true,
		Online:          false,
	}

	report := doctorReport(out, "https://chat.example.com/")

	assert.True(t, report.OverallOK)
	require.Len(t, report.Runtime, 1)
	assert.Equal(t, "GTK4", report.Runtime[0].Name)
	require.Len(t, report.Services, 2)
	assert.Equal(t, "Device portal", report.Services[0].Name)
	assert.False(t, report.Services[0].OK)
	assert.Contains(t, report.Services[1].Detail, "unreachable")
}

func TestDoctorReport_SkipsUncheckedServices(t *testing.T) {
	report := doctorReport(&usecase.DiagnoseOutput{OK: true}, "")
	assert.Empty(t, report.Services)
}
