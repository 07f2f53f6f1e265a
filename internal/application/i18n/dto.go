package i18n

import (
	"github.com/storefront/backend/internal/domain/i18n"
)

// BundleResponse is the API representation of the UI copy bundle for
// one language
type BundleResponse struct {
	Language      string `json:"language"`
	Search        string `json:"search"`
	SearchP       string `json:"searchp"`
	WIASI         string `json:"wiasi"`
	WIASIDesc     string `json:"wiasi_desc"`
	AboutUs       string `json:"about_us"`
	ReturnPolicy  string `json:"return_policy"`
	ContactUs     string `json:"contact_us"`
	Account       string `json:"account"`
	SignIn        string `json:"sign_in"`
	SignOut       string `json:"sign_out"`
	Profile       string `json:"profile"`
	Dashboard     string `json:"dashboard"`
	Logout        string `json:"logout"`
	ChangePass    string `json:"change_pass"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	DontHave      string `json:"dont_have"`
	ForgotPass    string `json:"forgot_pass"`
	FillName      string `json:"fill_name"`
	ConfirmPass   string `json:"confirm_pass"`
	MobileNo      string `json:"mobile_no"`
	AlreadyHave   string `json:"already_have"`
	Login         string `json:"login"`
	Register      string `json:"register"`
	Overview      string `json:"overview"`
	Details       string `json:"details"`
	AddReview     string `json:"add_review"`
	ReviewCaption string `json:"review_caption"`
	Submit        string `json:"submit"`
	NoCards       string `json:"no_cards"`
	SeeGal        string `json:"see_gal"`
	Avail         string `json:"avail"`
	NotAvail      string `json:"not_avail"`
	Features      string `json:"features"`
	ErrorLog      string `json:"error_log"`
	Error         string `json:"error"`
	SuccessLog    string `json:"success_log"`
	Success       string `json:"success"`
}

// UpdateBundleRequest carries new source-language texts for the bundle.
// Fields left nil keep their current value.
type UpdateBundleRequest struct {
	Search        *string `json:"search"`
	SearchP       *string `json:"searchp"`
	WIASI         *string `json:"wiasi"`
	WIASIDesc     *string `json:"wiasi_desc"`
	AboutUs       *string `json:"about_us"`
	ReturnPolicy  *string `json:"return_policy"`
	ContactUs     *string `json:"contact_us"`
	Account       *string `json:"account"`
	SignIn        *string `json:"sign_in"`
	SignOut       *string `json:"sign_out"`
	Profile       *string `json:"profile"`
	Dashboard     *string `json:"dashboard"`
	Logout        *string `json:"logout"`
	ChangePass    *string `json:"change_pass"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	DontHave      *string `json:"dont_have"`
	ForgotPass    *string `json:"forgot_pass"`
	FillName      *string `json:"fill_name"`
	ConfirmPass   *string `json:"confirm_pass"`
	MobileNo      *string `json:"mobile_no"`
	AlreadyHave   *string `json:"already_have"`
	Login         *string `json:"login"`
	Register      *string `json:"register"`
	Overview      *string `json:"overview"`
	Details       *string `json:"details"`
	AddReview     *string `json:"add_review"`
	ReviewCaption *string `json:"review_caption"`
	Submit        *string `json:"submit"`
	NoCards       *string `json:"no_cards"`
	SeeGal        *string `json:"see_gal"`
	Avail         *string `json:"avail"`
	NotAvail      *string `json:"not_avail"`
	Features      *string `json:"features"`
	ErrorLog      *string `json:"error_log"`
	Error         *string `json:"error"`
	SuccessLog    *string `json:"success_log"`
	Success       *string `json:"success"`
}

// ToBundleResponse maps a bundle to its API representation
func ToBundleResponse(bundle *i18n.LocalizationBundle, language string) BundleResponse {
	return BundleResponse{
		Language:      language,
		Search:        bundle.Search,
		SearchP:       bundle.SearchP,
		WIASI:         bundle.WIASI,
		WIASIDesc:     bundle.WIASIDesc,
		AboutUs:       bundle.AboutUs,
		ReturnPolicy:  bundle.ReturnPolicy,
		ContactUs:     bundle.ContactUs,
		Account:       bundle.Account,
		SignIn:        bundle.SignIn,
		SignOut:       bundle.SignOut,
		Profile:       bundle.Profile,
		Dashboard:     bundle.Dashboard,
		Logout:        bundle.Logout,
		ChangePass:    bundle.ChangePass,
		Email:         bundle.Email,
		Password:      bundle.Password,
		DontHave:      bundle.DontHave,
		ForgotPass:    bundle.ForgotPass,
		FillName:      bundle.FillName,
		ConfirmPass:   bundle.ConfirmPass,
		MobileNo:      bundle.MobileNo,
		AlreadyHave:   bundle.AlreadyHave,
		Login:         bundle.Login,
		Register:      bundle.Register,
		Overview:      bundle.Overview,
		Details:       bundle.Details,
		AddReview:     bundle.AddReview,
		ReviewCaption: bundle.ReviewCaption,
		Submit:        bundle.Submit,
		NoCards:       bundle.NoCards,
		SeeGal:        bundle.SeeGal,
		Avail:         bundle.Avail,
		NotAvail:      bundle.NotAvail,
		Features:      bundle.Features,
		ErrorLog:      bundle.ErrorLog,
		Error:         bundle.Error,
		SuccessLog:    bundle.SuccessLog,
		Success:       bundle.Success,
	}
}
