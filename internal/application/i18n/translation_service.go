package i18n

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/storefront/backend/internal/domain/i18n"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ErrUnsupportedLanguage is returned when a bundle is requested in a
// language the storefront does not offer
var ErrUnsupportedLanguage = shared.NewDomainError("UNSUPPORTED_LANGUAGE", "Requested language is not offered")

// TranslationService serves the UI copy bundle in any offered
// language. The source-language bundle is stored; other languages are
// produced by batch-translating all bundle texts in one provider call
// and cached by source text, so an edited bundle is re-translated on
// the next request.
type TranslationService struct {
	bundleRepo i18n.BundleRepository
	translator i18n.Translator
	cache      cache.TranslationCache
	cfg        config.TranslationConfig
	logger     *zap.Logger
}

// NewTranslationService creates a new TranslationService
func NewTranslationService(
	bundleRepo i18n.BundleRepository,
	translator i18n.Translator,
	translationCache cache.TranslationCache,
	cfg config.TranslationConfig,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		bundleRepo: bundleRepo,
		translator: translator,
		cache:      translationCache,
		cfg:        cfg,
		logger:     logger,
	}
}

// Languages returns the languages the storefront offers
func (s *TranslationService) Languages() []string {
	return slices.Clone(s.cfg.Languages)
}

// GetBundle returns the UI copy bundle in the requested language
func (s *TranslationService) GetBundle(ctx context.Context, language string) (*BundleResponse, error) {
	if !slices.Contains(s.cfg.Languages, language) {
		return nil, ErrUnsupportedLanguage
	}

	bundle, err := s.bundleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if language == s.cfg.SourceLanguage {
		response := ToBundleResponse(bundle, language)
		return &response, nil
	}

	segments, err := s.TranslateTexts(ctx, bundle.Segments(), language)
	if err != nil {
		// Translation failure is recoverable: untranslated copy still
		// renders the page, so serve the source-language bundle.
		s.logger.Warn("Serving source-language bundle",
			zap.String("language", language),
			zap.Error(err),
		)
		response := ToBundleResponse(bundle, s.cfg.SourceLanguage)
		return &response, nil
	}

	translated, err := bundle.WithSegments(segments)
	if err != nil {
		return nil, err
	}

	response := ToBundleResponse(translated, language)
	return &response, nil
}

// UpdateBundle applies new source-language texts to the stored bundle.
// Cached translations of the previous texts are keyed by source text,
// so they stop matching once the bundle changes.
func (s *TranslationService) UpdateBundle(ctx context.Context, req UpdateBundleRequest) (*BundleResponse, error) {
	bundle, err := s.bundleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	applyBundleUpdate(bundle, req)

	if err := s.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, err
	}

	s.logger.Info("Localization bundle updated", zap.String("bundle_id", bundle.ID.String()))

	response := ToBundleResponse(bundle, s.cfg.SourceLanguage)
	return &response, nil
}

// TranslateTexts translates a batch of texts into the target language
// with a single provider call. Results are cached by the joined source
// text and language.
func (s *TranslationService) TranslateTexts(ctx context.Context, texts []string, language string) ([]string, error) {
	joined, err := i18n.JoinSegments(texts)
	if err != nil {
		return nil, err
	}

	key := cache.TranslationKey(joined, language)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache should not take translation down with it
		s.logger.Warn("Translation cache read failed", zap.Error(err))
	}
	if found {
		if segments, splitErr := i18n.SplitSegments(cached, len(texts)); splitErr == nil {
			return segments, nil
		}
		s.logger.Warn("Discarding malformed cached translation", zap.String("language", language))
	}

	translated, err := s.translator.Translate(ctx, joined, language)
	if err != nil {
		s.logger.Error("Translation provider call failed",
			zap.String("language", language),
			zap.Error(err),
		)
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, shared.ErrTranslationService
	}

	segments, err := i18n.SplitSegments(translated, len(texts))
	if err != nil {
		s.logger.Error("Translated text does not match source layout",
			zap.String("language", language),
			zap.Int("want_segments", len(texts)),
		)
		return nil, err
	}

	if err := s.cache.Set(ctx, key, translated, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("Translation cache write failed", zap.Error(err))
	}

	return segments, nil
}

// TranslateRows translates rows of texts, such as the visible fields of
// a catalog page, into the target language. All rows are flattened into
// one segment batch so a whole listing costs a single provider call.
// The source language comes back unchanged.
func (s *TranslationService) TranslateRows(ctx context.Context, rows [][]string, language string) ([][]string, error) {
	if language == s.cfg.SourceLanguage || len(rows) == 0 {
		return rows, nil
	}
	if !slices.Contains(s.cfg.Languages, language) {
		return nil, ErrUnsupportedLanguage
	}

	flat := make([]string, 0, len(rows)*4)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	segments, err := s.TranslateTexts(ctx, flat, language)
	if err != nil {
		return nil, err
	}

	translated := make([][]string, len(rows))
	offset := 0
	for i, row := range rows {
		translated[i] = segments[offset : offset+len(row)]
		offset += len(row)
	}
	return translated, nil
}

func applyBundleUpdate(bundle *i18n.LocalizationBundle, req UpdateBundleRequest) {
	fields := []struct {
		src *string
		dst *string
	}{
		{req.Search, &bundle.Search},
		{req.SearchP, &bundle.SearchP},
		{req.WIASI, &bundle.WIASI},
		{req.WIASIDesc, &bundle.WIASIDesc},
		{req.AboutUs, &bundle.AboutUs},
		{req.ReturnPolicy, &bundle.ReturnPolicy},
		{req.ContactUs, &bundle.ContactUs},
		{req.Account, &bundle.Account},
		{req.SignIn, &bundle.SignIn},
		{req.SignOut, &bundle.SignOut},
		{req.Profile, &bundle.Profile},
		{req.Dashboard, &bundle.Dashboard},
		{req.Logout, &bundle.Logout},
		{req.ChangePass, &bundle.ChangePass},
		{req.Email, &bundle.Email},
		{req.Password, &bundle.Password},
		{req.DontHave, &bundle.DontHave},
		{req.ForgotPass, &bundle.ForgotPass},
		{req.FillName, &bundle.FillName},
		{req.ConfirmPass, &bundle.ConfirmPass},
		{req.MobileNo, &bundle.MobileNo},
		{req.AlreadyHave, &bundle.AlreadyHave},
		{req.Login, &bundle.Login},
		{req.Register, &bundle.Register},
		{req.Overview, &bundle.Overview},
		{req.Details, &bundle.Details},
		{req.AddReview, &bundle.AddReview},
		{req.ReviewCaption, &bundle.ReviewCaption},
		{req.Submit, &bundle.Submit},
		{req.NoCards, &bundle.NoCards},
		{req.SeeGal, &bundle.SeeGal},
		{req.Avail, &bundle.Avail},
		{req.NotAvail, &bundle.NotAvail},
		{req.Features, &bundle.Features},
		{req.ErrorLog, &bundle.ErrorLog},
		{req.Error, &bundle.Error},
		{req.SuccessLog, &bundle.SuccessLog},
		{req.Success, &bundle.Success},
	}

	changed := false
	for _, f := range fields {
		if f.src != nil {
			*f.dst = *f.src
			changed = true
		}
	}

	if changed {
		bundle.UpdatedAt = time.Now()
	}
}
