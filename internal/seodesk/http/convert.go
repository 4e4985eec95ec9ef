package http

import (
	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

func toInvite(inv domain.Invite) seosdk.Invite {
	return seosdk.Invite{
		ID:              inv.ID,
		WebsiteID:       inv.WebsiteID,
		Email:           inv.Email,
		Status:          string(inv.Status),
		InvitedBy:       inv.InvitedBy,
		Message:         inv.Message,
		ExpiresAt:       inv.ExpiresAt,
		AcceptedAt:      inv.AcceptedAt,
		RejectedAt:      inv.RejectedAt,
		RevokedAt:       inv.RevokedAt,
		RejectionReason: inv.RejectionReason,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
		Token:           inv.Token,
	}
}

func toInvites(in []domain.Invite) []seosdk.Invite {
	out := make([]seosdk.Invite, 0, len(in))
	for _, inv := range in {
		out = append(out, toInvite(inv))
	}
	return out
}

func toUser(u domain.User) seosdk.User {
	return seosdk.User{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		AvatarURL:   u.AvatarURL,
		IsOnboarded: u.IsOnboarded,
		CreatedAt:   u.CreatedAt,
	}
}

func toMember(m domain.Member) seosdk.Member {
	out := seosdk.Member{
		ID:        m.ID,
		UserID:    m.UserID,
		WebsiteID: m.WebsiteID,
		IsActive:  m.IsActive,
		JoinedAt:  m.JoinedAt,
		InvitedAt: m.InvitedAt,
		InvitedBy: m.InvitedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.User != nil {
		u := toUser(*m.User)
		out.User = &u
	}
	return out
}

func toWebsite(w domain.Website) seosdk.Website {
	out := seosdk.Website{
		ID:             w.ID,
		UserID:         w.UserID,
		URL:            w.URL,
		Name:           w.Name,
		Description:    w.Description,
		ScrapedContent: w.ScrapedContent,
		ScrapingStatus: string(w.ScrapingStatus),
		ScrapingError:  w.ScrapingError,
		ScrapedAt:      w.ScrapedAt,
		IsPrimary:      w.IsPrimary,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
	if w.ScrapedMeta != nil {
		meta := seosdk.WebsiteMeta(*w.ScrapedMeta)
		out.ScrapedMeta = &meta
	}
	return out
}

func toOnboardingStatus(st service.OnboardingStatus) seosdk.OnboardingStatus {
	out := seosdk.OnboardingStatus{
		IsOnboarded:   st.IsOnboarded,
		HasWebsite:    st.HasWebsite,
		WebsiteStatus: string(st.WebsiteStatus),
	}
	if st.Website != nil {
		w := toWebsite(*st.Website)
		out.Website = &w
	}
	return out
}

func toKeyword(k domain.Keyword) seosdk.Keyword {
	out := seosdk.Keyword{
		ID:               k.ID,
		UserID:           k.UserID,
		WebsiteID:        k.WebsiteID,
		Keyword:          k.Keyword,
		Competition:      string(k.Competition),
		Volume:           k.Volume,
		RecommendedTitle: k.RecommendedTitle,
		IsAnalyzed:       k.IsAnalyzed,
		CreatedAt:        k.CreatedAt,
		UpdatedAt:        k.UpdatedAt,
	}
	if a := k.Analysis; a != nil {
		out.AIAnalysis = &seosdk.KeywordAnalysis{
			Competition:      string(a.Competition),
			CompetitionScore: a.CompetitionScore,
			Volume:           a.Volume,
			Difficulty:       a.Difficulty,
			Trend:            a.Trend,
			RecommendedTitle: a.RecommendedTitle,
		}
	}
	return out
}

func toKeywords(in []domain.Keyword) []seosdk.Keyword {
	out := make([]seosdk.Keyword, 0, len(in))
	for _, k := range in {
		out = append(out, toKeyword(k))
	}
	return out
}

func toArticle(a domain.Article) seosdk.Article {
	secondary := a.SecondaryKeywordIDs
	if secondary == nil {
		secondary = []string{}
	}
	return seosdk.Article{
		ID:                  a.ID,
		UserID:              a.UserID,
		WebsiteID:           a.WebsiteID,
		PrimaryKeywordID:    a.PrimaryKeywordID,
		SecondaryKeywordIDs: secondary,
		Title:               a.Title,
		ContentBriefing:     a.ContentBriefing,
		ReferenceContent:    a.ReferenceContent,
		Content:             a.Content,
		ContentJSON:         a.ContentJSON,
		Status:              string(a.Status),
		ErrorMessage:        a.ErrorMessage,
		PromptTokens:        a.PromptTokens,
		CompletionTokens:    a.CompletionTokens,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func toArticles(in []domain.Article) []seosdk.Article {
	out := make([]seosdk.Article, 0, len(in))
	for _, a := range in {
		out = append(out, toArticle(a))
	}
	return out
}
