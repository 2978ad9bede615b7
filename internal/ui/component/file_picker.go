package component

import (
	"context"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// FilePicker opens the native (portal backed when sandboxed) file chooser.
type FilePicker struct {
	parent *gtk.Window
}

var _ port.FilePicker = (*FilePicker)(nil)

// NewFilePicker creates a picker modal to parent.
func NewFilePicker(parent *gtk.Window) *FilePicker {
	return &FilePicker{parent: parent}
}

// PickFile shows a single-selection open dialog accepting any file. The
// page's accept list is only logged. done receives one URI or nil when
// cancelled.
func (p *FilePicker) PickFile(ctx context.Context, mimeTypes []string, done func(uris []string)) {
	log := logging.FromContext(ctx)

	chooser := gtk.NewFileChooserNative("Select a file", p.parent, gtk.FileChooserActionOpen, "_Open", "_Cancel")
	chooser.SetModal(true)
	chooser.SetSelectMultiple(false)

	log.Debug().Strs("accept", mimeTypes).Msg("opening file chooser for any file type")
	want := chooserFilter(mimeTypes)
	filter := gtk.NewFileFilter()
	filter.SetName(want.name)
	for _, m := range want.mimeTypes {
		filter.AddMIMEType(m)
	}
	chooser.AddFilter(filter)

	chooser.ConnectResponse(func(responseID int) {
		defer chooser.Destroy()

		if responseID != int(gtk.ResponseAccept) {
			log.Debug().Int("response", responseID).Msg("file chooser dismissed")
			done(nil)
			return
		}
		file := chooser.File()
		if file == nil {
			done(nil)
			return
		}
		done([]string{file.URI()})
	})
	chooser.Show()
}

type filterSpec struct {
	name      string
	mimeTypes []string
}

// chooserFilter returns the only filter the chooser offers. It is the
// same whatever the page asked for.
func chooserFilter([]string) filterSpec {
	return filterSpec{name: "All files", mimeTypes: []string{"*/*"}}
}
