package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/codeora/internal/application/port"
	portmocks "github.com/bnema/codeora/internal/application/port/mocks"
	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeVersionProbe map[string]string

func (f fakeVersionProbe) PkgConfigModVersion(_ context.Context, pkgName string) (string, error) {
	v, ok := f[pkgName]
	if !ok {
		return "", &port.PkgConfigError{Package: pkgName, Err: port.ErrPkgConfigPackageMissing}
	}
	return v, nil
}

type fakePortal bool

func (f fakePortal) Supported() bool { return bool(f) }

func TestDiagnoseUseCase_AllPresent(t *testing.T) {
	probe := fakeVersionProbe{"gtk4": "4.18.2\n", "webkitgtk-6.0": "2.48.0", "glib-2.0": "2.84.1"}
	network := portmocks.NewMockNetworkMonitor(t)
	network.EXPECT().NetworkAvailable(mock.Anything).Return(true).Once()

	out := usecase.NewDiagnoseUseCase(probe, fakePortal(true), network).Execute(testContext())

	assert.True(t, out.OK)
	require.Len(t, out.Runtime, 3)
	assert.Equal(t, "4.18.2", out.Runtime[0].Version)
	for _, s := range out.Runtime {
		assert.True(t, s.OK, s.DisplayName)
	}
	assert.True(t, out.PortalChecked)
	assert.True(t, out.PortalAvailable)
	assert.True(t, out.NetworkChecked)
	assert.True(t, out.Online)
}

func TestDiagnoseUseCase_MissingAndOldLibraries(t *testing.T) {
	probe := fakeVersionProbe{"gtk4": "4.10.0", "glib-2.0": "2.84.1"}

	out := usecase.NewDiagnoseUseCase(probe, nil, nil).Execute(testContext())

	assert.False(t, out.OK)
	assert.True(t, out.Runtime[0].Installed)
	assert.False(t, out.Runtime[0].OK, "gtk4 too old")
	assert.False(t, out.Runtime[1].Installed)
	assert.Contains(t, out.Runtime[1].Error, "webkitgtk-6.0")
	assert.True(t, out.Runtime[2].OK)
	assert.False(t, out.PortalChecked)
	assert.False(t, out.NetworkChecked)
}

func TestDiagnoseUseCase_PortalAndNetworkDoNotFailReport(t *testing.T) {
	probe := fakeVersionProbe{"gtk4": "4.18", "webkitgtk-6.0": "2.48", "glib-2.0": "2.84"}
	network := portmocks.NewMockNetworkMonitor(t)
	network.EXPECT().NetworkAvailable(mock.Anything).Return(false)

	out := usecase.NewDiagnoseUseCase(probe, fakePortal(false), network).Execute(testContext())

	assert.True(t, out.OK)
	assert.False(t, out.PortalAvailable)
	assert.False(t, out.Online)
}
