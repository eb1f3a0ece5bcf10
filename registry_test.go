package ariatabs

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const twoWidgetDocument = `
<html><body>
  <div id="first" data-component="tabs">
    <div data-tabs-list>
      <button data-tabs-tab>A</button>
      <button data-tabs-tab>B</button>
    </div>
    <div data-tabs-panel>a</div>
    <div data-tabs-panel>b</div>
  </div>
  <div id="second" data-component="tabs" data-tabs-activation="auto">
    <div data-tabs-list>
      <button data-tabs-tab>C</button>
      <button data-tabs-tab>D</button>
    </div>
    <div data-tabs-panel>c</div>
    <div data-tabs-panel>d</div>
  </div>
  <div id="mystery" data-component="accordion"></div>
</body></html>`

func parseDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestMount(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)

	reg := NewRegistry()
	var mountErrs []error
	reg.OnError = func(_ *goquery.Selection, err error) {
		mountErrs = append(mountErrs, err)
	}

	mounted := reg.Mount(doc, Config{})

	if len(mounted) != 2 {
		t.Fatalf("mounted %d controllers, want 2", len(mounted))
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if len(mountErrs) != 1 || !errors.Is(mountErrs[0], ErrUnknownPattern) {
		t.Errorf("mount errors = %v, want one ErrUnknownPattern", mountErrs)
	}
}

func TestMountAttrOverrides(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)
	reg := NewRegistry()
	reg.OnError = func(*goquery.Selection, error) {}
	reg.Mount(doc, Config{})

	first, ok := reg.ControllerFor(doc.Find("#first"))
	if !ok {
		t.Fatal("no controller for #first")
	}
	second, ok := reg.ControllerFor(doc.Find("#second"))
	if !ok {
		t.Fatal("no controller for #second")
	}

	// #first keeps the manual default: arrows move focus only.
	first.HandleKey(0, KeyArrowRight)
	if got := first.SelectedIndex(); got != 0 {
		t.Errorf("#first SelectedIndex() = %d, want 0", got)
	}

	// #second overrides activation via data-tabs-activation="auto".
	second.HandleKey(0, KeyArrowRight)
	if got := second.SelectedIndex(); got != 1 {
		t.Errorf("#second SelectedIndex() = %d, want 1", got)
	}
}

func TestMountTwiceReportsDuplicates(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)
	reg := NewRegistry()
	reg.Mount(doc, Config{})

	var mountErrs []error
	reg.OnError = func(_ *goquery.Selection, err error) {
		mountErrs = append(mountErrs, err)
	}
	mounted := reg.Mount(doc, Config{})

	if len(mounted) != 0 {
		t.Errorf("second Mount mounted %d controllers, want 0", len(mounted))
	}
	duplicates := 0
	for _, err := range mountErrs {
		if errors.Is(err, ErrDuplicateContainer) {
			duplicates++
		}
	}
	if duplicates != 2 {
		t.Errorf("got %d duplicate-container errors, want 2 (errors: %v)", duplicates, mountErrs)
	}
}

func TestRegisterEmptySelection(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)
	reg := NewRegistry()

	if _, err := reg.Register(doc.Find("#does-not-exist"), Config{}); err == nil {
		t.Error("Register on an empty selection should fail")
	}
}

func TestControllerForUnknownContainer(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)
	reg := NewRegistry()
	reg.Mount(doc, Config{})

	if _, ok := reg.ControllerFor(doc.Find("#mystery")); ok {
		t.Error("ControllerFor should not find a controller for an unmounted container")
	}
}

func TestDestroyAll(t *testing.T) {
	doc := parseDoc(t, twoWidgetDocument)
	reg := NewRegistry()
	mounted := reg.Mount(doc, Config{})

	reg.DestroyAll()

	if reg.Len() != 0 {
		t.Errorf("Len() = %d after DestroyAll, want 0", reg.Len())
	}
	for i, ctrl := range mounted {
		if ctrl.HandleClick(0) {
			t.Errorf("controller %d still consumes clicks after DestroyAll", i)
		}
	}

	// Containers can be mounted again after DestroyAll.
	if remounted := reg.Mount(doc, Config{}); len(remounted) != 2 {
		t.Errorf("remount mounted %d controllers, want 2", len(remounted))
	}
}

func TestStrictMountFailureReported(t *testing.T) {
	doc := parseDoc(t, `
<html><body>
  <div data-component="tabs">
    <div role="tablist"><button role="tab">no id</button></div>
    <div role="tabpanel" id="p0">panel</div>
  </div>
</body></html>`)

	reg := NewRegistry()
	var mountErrs []error
	reg.OnError = func(_ *goquery.Selection, err error) {
		mountErrs = append(mountErrs, err)
	}

	mounted := reg.Mount(doc, Config{Strict: true})

	if len(mounted) != 0 {
		t.Errorf("mounted %d controllers, want 0", len(mounted))
	}
	if len(mountErrs) != 1 || !errors.Is(mountErrs[0], ErrMissingID) {
		t.Errorf("mount errors = %v, want one ErrMissingID", mountErrs)
	}
	if reg.Len() != 0 {
		t.Errorf("failed mounts must not occupy the side table, Len() = %d", reg.Len())
	}
}
