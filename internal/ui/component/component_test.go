package component

import (
	"testing"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestToastClass(t *testing.T) {
	assert.Equal(t, "toast-info", toastClass(port.NotificationInfo))
	assert.Equal(t, "toast-success", toastClass(port.NotificationSuccess))
	assert.Equal(t, "toast-warning", toastClass(port.NotificationWarning))
	assert.Equal(t, "toast-error", toastClass(port.NotificationError))
	for _, c := range []port.NotificationType{port.NotificationInfo, port.NotificationError} {
		assert.Contains(t, toastClasses, toastClass(c))
	}
}

func TestClampFraction(t *testing.T) {
	assert.Equal(t, 0.0, clampFraction(-1))
	assert.Equal(t, 0.5, clampFraction(0.5))
	assert.Equal(t, 1.0, clampFraction(3))
}

func TestChooserFilterAcceptsAnyType(t *testing.T) {
	want := filterSpec{name: "All files", mimeTypes: []string{"*/*"}}
	assert.Equal(t, want, chooserFilter(nil))
	assert.Equal(t, want, chooserFilter([]string{"image/png", "audio/*"}), "page accept list does not narrow the chooser")
}

func TestFallbackText(t *testing.T) {
	assert.Equal(t, "You're offline", FallbackHeading(entity.FailureNoNetwork))
	assert.Equal(t, "Something went wrong", FallbackHeading(entity.FailureHTTPStatus))
	assert.NotEmpty(t, FallbackDetail(entity.FailureMainFrameLoad))
	assert.Empty(t, FallbackDetail(entity.FailureNone))
}
