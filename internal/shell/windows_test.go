package shell

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

type fakeWindow struct {
	mu       sync.Mutex
	focus    int
	focusErr error
	closed   func(exitCode int)
}

func (w *fakeWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focus++
	return w.focusErr
}

func (w *fakeWindow) focusCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focus
}

type fakeLauncher struct {
	launched []*fakeWindow
	specs    []WindowSpec
	err      error
}

func (l *fakeLauncher) Launch(spec WindowSpec, closed func(exitCode int)) (Window, error) {
	if l.err != nil {
		return nil, l.err
	}
	w := &fakeWindow{closed: closed}
	l.launched = append(l.launched, w)
	l.specs = append(l.specs, spec)
	return w, nil
}

var _ = Describe("WindowManager", func() {
	var (
		launcher *fakeLauncher
		manager  *WindowManager
	)

	BeforeEach(func() {
		launcher = &fakeLauncher{}
		manager = NewWindowManager(launcher, zerolog.Nop())
	})

	It("should launch the settings window with its fixed spec", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())

		Expect(launcher.specs).To(HaveLen(1))
		spec := launcher.specs[0]
		Expect(spec.ID).To(Equal("settings"))
		Expect(spec.Title).To(Equal("Change Server"))
		Expect(spec.Width).To(Equal(420))
		Expect(spec.Height).To(Equal(280))
		Expect(spec.Resizable).To(BeFalse())
		Expect(spec.Center).To(BeTrue())
		Expect(spec.Focused).To(BeTrue())
		Expect(manager.isOpen("settings")).To(BeTrue())
	})

	It("should focus instead of duplicating on repeat activation", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())
		Expect(manager.Open(SettingsWindow)).To(Succeed())

		Expect(launcher.launched).To(HaveLen(1))
		Expect(launcher.launched[0].focusCount()).To(Equal(1))
	})

	It("should launch again after the user closes the window", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())
		launcher.launched[0].closed(0)

		Expect(manager.isOpen("settings")).To(BeFalse())

		Expect(manager.Open(SettingsWindow)).To(Succeed())
		Expect(launcher.launched).To(HaveLen(2))
		Expect(launcher.launched[0].focusCount()).To(Equal(0))
	})

	It("should launch a new window when the tracked one is already gone", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())
		first := launcher.launched[0]
		first.focusErr = ErrWindowClosed

		Expect(manager.Open(SettingsWindow)).To(Succeed())

		Expect(launcher.launched).To(HaveLen(2))
		Expect(manager.isOpen("settings")).To(BeTrue())

		// the pending close of the first window leaves the new one tracked
		first.closed(0)
		Expect(manager.isOpen("settings")).To(BeTrue())
	})

	It("should report focus failures", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())
		launcher.launched[0].focusErr = errors.New("exec failed")

		Expect(manager.Open(SettingsWindow)).To(MatchError(ContainSubstring("exec failed")))
		Expect(launcher.launched).To(HaveLen(1))
	})

	It("should ignore a late close from a replaced window", func() {
		Expect(manager.Open(SettingsWindow)).To(Succeed())
		first := launcher.launched[0]
		first.closed(0)
		Expect(manager.Open(SettingsWindow)).To(Succeed())

		first.closed(0)

		Expect(manager.isOpen("settings")).To(BeTrue())
	})

	It("should request a restart when the window exits with ExitRestart", func() {
		restarts := 0
		manager.OnRestart = func() { restarts++ }

		Expect(manager.Open(SettingsWindow)).To(Succeed())
		launcher.launched[0].closed(ExitRestart)

		Expect(restarts).To(Equal(1))
		Expect(manager.isOpen("settings")).To(BeFalse())
	})

	It("should not restart on a plain close", func() {
		restarts := 0
		manager.OnRestart = func() { restarts++ }

		Expect(manager.Open(SettingsWindow)).To(Succeed())
		launcher.launched[0].closed(0)

		Expect(restarts).To(BeZero())
	})

	It("should report launch failures and stay closed", func() {
		launcher.err = errors.New("no display")

		err := manager.Open(SettingsWindow)

		Expect(err).To(MatchError(ContainSubstring("no display")))
		Expect(manager.isOpen("settings")).To(BeFalse())
	})
})

var _ = Describe("WindowSpec", func() {
	It("should be registered by ID", func() {
		spec, ok := LookupWindow("settings")
		Expect(ok).To(BeTrue())
		Expect(spec).To(Equal(SettingsWindow))

		_, ok = LookupWindow("main")
		Expect(ok).To(BeFalse())
	})

	It("should derive a stable single-instance ID", func() {
		path := "/home/user/.config/pilti/settings.json"
		Expect(SettingsWindow.InstanceID(path)).To(Equal(SettingsWindow.InstanceID(path)))
		Expect(SettingsWindow.InstanceID(path)).NotTo(Equal(WindowSpec{ID: "other"}.InstanceID(path)))
	})

	It("should separate single-instance IDs per settings file", func() {
		Expect(SettingsWindow.InstanceID("/a/settings.json")).
			NotTo(Equal(SettingsWindow.InstanceID("/b/settings.json")))
	})

	It("should build the window process arguments", func() {
		Expect(WindowArgs("settings")).To(Equal([]string{"--window", "settings"}))
	})
})
