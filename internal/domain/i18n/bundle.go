package i18n

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// FieldCount is the number of translatable texts in a bundle
const FieldCount = 38

// LocalizationBundle holds every piece of storefront UI copy as one
// row. The field order is fixed: Segments and WithSegments rely on it
// to batch-translate the whole bundle in a single provider call.
type LocalizationBundle struct {
	shared.BaseEntity
	Search        string
	SearchP       string
	WIASI         string
	WIASIDesc     string
	AboutUs       string
	ReturnPolicy  string
	ContactUs     string
	Account       string
	SignIn        string
	SignOut       string
	Profile       string
	Dashboard     string
	Logout        string
	ChangePass    string
	Email         string
	Password      string
	DontHave      string
	ForgotPass    string
	FillName      string
	ConfirmPass   string
	MobileNo      string
	AlreadyHave   string
	Login         string
	Register      string
	Overview      string
	Details       string
	AddReview     string
	ReviewCaption string
	Submit        string
	NoCards       string
	SeeGal        string
	Avail         string
	NotAvail      string
	Features      string
	ErrorLog      string
	Error         string
	SuccessLog    string
	Success       string
}

// NewLocalizationBundle creates an empty bundle
func NewLocalizationBundle() *LocalizationBundle {
	return &LocalizationBundle{
		BaseEntity: shared.NewBaseEntity(),
	}
}

// Segments returns the bundle texts in their canonical order
func (b *LocalizationBundle) Segments() []string {
	return []string{
		b.Search, b.SearchP, b.WIASI, b.WIASIDesc, b.AboutUs,
		b.ReturnPolicy, b.ContactUs, b.Account, b.SignIn, b.SignOut,
		b.Profile, b.Dashboard, b.Logout, b.ChangePass, b.Email,
		b.Password, b.DontHave, b.ForgotPass, b.FillName, b.ConfirmPass,
		b.MobileNo, b.AlreadyHave, b.Login, b.Register, b.Overview,
		b.Details, b.AddReview, b.ReviewCaption, b.Submit, b.NoCards,
		b.SeeGal, b.Avail, b.NotAvail, b.Features, b.ErrorLog,
		b.Error, b.SuccessLog, b.Success,
	}
}

// WithSegments returns a copy of the bundle with its texts replaced
// in canonical order. The receiver is never modified.
func (b *LocalizationBundle) WithSegments(segments []string) (*LocalizationBundle, error) {
	if len(segments) != FieldCount {
		return nil, shared.ErrTranslationFormat
	}

	out := *b
	out.Search, out.SearchP, out.WIASI, out.WIASIDesc, out.AboutUs = segments[0], segments[1], segments[2], segments[3], segments[4]
	out.ReturnPolicy, out.ContactUs, out.Account, out.SignIn, out.SignOut = segments[5], segments[6], segments[7], segments[8], segments[9]
	out.Profile, out.Dashboard, out.Logout, out.ChangePass, out.Email = segments[10], segments[11], segments[12], segments[13], segments[14]
	out.Password, out.DontHave, out.ForgotPass, out.FillName, out.ConfirmPass = segments[15], segments[16], segments[17], segments[18], segments[19]
	out.MobileNo, out.AlreadyHave, out.Login, out.Register, out.Overview = segments[20], segments[21], segments[22], segments[23], segments[24]
	out.Details, out.AddReview, out.ReviewCaption, out.Submit, out.NoCards = segments[25], segments[26], segments[27], segments[28], segments[29]
	out.SeeGal, out.Avail, out.NotAvail, out.Features, out.ErrorLog = segments[30], segments[31], segments[32], segments[33], segments[34]
	out.Error, out.SuccessLog, out.Success = segments[35], segments[36], segments[37]

	return &out, nil
}
