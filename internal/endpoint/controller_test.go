package endpoint

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

type fakeProvider struct {
	url     string
	saves   []string
	saveErr error
}

func (p *fakeProvider) Load() string { return p.url }

func (p *fakeProvider) Save(url string) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves = append(p.saves, url)
	p.url = url
	return nil
}

var _ = Describe("Controller", func() {
	var (
		provider   *fakeProvider
		controller *Controller
	)

	BeforeEach(func() {
		provider = &fakeProvider{url: "https://smartyapp.piltismart.com"}
		controller = NewController(provider, zerolog.Nop())
	})

	Describe("CurrentURL", func() {
		It("should pass through the provider value", func() {
			Expect(controller.CurrentURL()).To(Equal("https://smartyapp.piltismart.com"))
		})
	})

	Describe("UpdateURL", func() {
		Context("with an invalid URL", func() {
			It("should return an InvalidURL error without saving", func() {
				effect, err := controller.UpdateURL("not a url")

				Expect(err).To(HaveOccurred())
				Expect(err).To(MatchError(ErrInvalidURL))
				Expect(err.Error()).To(ContainSubstring("Invalid URL"))
				Expect(effect).To(Equal(EffectNone))
				Expect(provider.saves).To(BeEmpty())
				Expect(controller.CurrentURL()).To(Equal("https://smartyapp.piltismart.com"))
			})

			DescribeTable("should not save URLs that parse but are not valid",
				func(raw string) {
					effect, err := controller.UpdateURL(raw)

					Expect(err).To(MatchError(ErrInvalidURL))
					Expect(effect).To(Equal(EffectNone))
					Expect(provider.saves).To(BeEmpty())
					Expect(controller.CurrentURL()).To(Equal("https://smartyapp.piltismart.com"))
				},
				Entry("port out of range", "https://example.com:99999"),
				Entry("second port", "http://example.com:8080:9090"),
				Entry("ipv4 out of range", "http://999.999.999.999"),
			)

			It("should expose the diagnostic through InvalidURLError", func() {
				_, err := controller.UpdateURL("https://")

				var invalid *InvalidURLError
				Expect(errors.As(err, &invalid)).To(BeTrue())
				Expect(invalid.Input).To(Equal("https://"))
				Expect(invalid.Reason).To(Equal("empty host"))
			})
		})

		Context("with a valid URL", func() {
			It("should save it and request a restart", func() {
				effect, err := controller.UpdateURL("https://example.com:8443/app")

				Expect(err).NotTo(HaveOccurred())
				Expect(effect).To(Equal(EffectRestart))
				Expect(provider.saves).To(Equal([]string{"https://example.com:8443/app"}))
				Expect(controller.CurrentURL()).To(Equal("https://example.com:8443/app"))
			})

			It("should trim surrounding whitespace before saving", func() {
				_, err := controller.UpdateURL("  https://example.com/\n")

				Expect(err).NotTo(HaveOccurred())
				Expect(provider.saves).To(Equal([]string{"https://example.com/"}))
			})
		})

		Context("when saving fails", func() {
			It("should surface the error and not request a restart", func() {
				provider.saveErr = errors.New("disk full")

				effect, err := controller.UpdateURL("https://example.com")

				Expect(err).To(MatchError(ContainSubstring("disk full")))
				Expect(err).NotTo(MatchError(ErrInvalidURL))
				Expect(effect).To(Equal(EffectNone))
			})
		})
	})
})

var _ = Describe("Effect", func() {
	It("should render a readable name", func() {
		Expect(EffectRestart.String()).To(Equal("restart"))
		Expect(EffectNone.String()).To(Equal("none"))
	})
})
