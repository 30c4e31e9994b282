package dto

import (
	"errors"
	"net/url"

	"coffeechat.app/api/internal/model"
)

// minProfileTextWithURL is the profile-text floor when a URL accompanies the
// submission. A link alone is not content: the model needs the actual
// profile text to generate anything specific.
const minProfileTextWithURL = 100

type KitUserInfo struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Company    string `json:"company,omitempty"`
	Background string `json:"background,omitempty"`
	Goals      string `json:"goals,omitempty"`
}

type KitTargetInfo struct {
	ProfileText string `json:"profileText"`
	ProfileURL  string `json:"profileUrl,omitempty"`
}

type GenerateKitRequest struct {
	UserInfo   KitUserInfo   `json:"userInfo"`
	TargetInfo KitTargetInfo `json:"targetInfo"`
}

func (r *GenerateKitRequest) Validate() (model.KitUserInfo, model.KitTargetInfo, error) {
	if r.UserInfo.Name == "" || r.UserInfo.Role == "" || r.TargetInfo.ProfileText == "" {
		return model.KitUserInfo{}, model.KitTargetInfo{}, errors.New("name, role, and target profile text are required")
	}

	if r.TargetInfo.ProfileURL != "" {
		parsed, err := url.Parse(r.TargetInfo.ProfileURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return model.KitUserInfo{}, model.KitTargetInfo{}, errors.New("profile URL must be a valid URL")
		}
		if len(r.TargetInfo.ProfileText) < minProfileTextWithURL {
			return model.KitUserInfo{}, model.KitTargetInfo{}, errors.New("please paste the actual profile text (About/Experience/Education), not just the link")
		}
	}

	return model.KitUserInfo{
			Name:       r.UserInfo.Name,
			Role:       r.UserInfo.Role,
			Company:    r.UserInfo.Company,
			Background: r.UserInfo.Background,
			Goals:      r.UserInfo.Goals,
		}, model.KitTargetInfo{
			ProfileText: r.TargetInfo.ProfileText,
			ProfileURL:  r.TargetInfo.ProfileURL,
		}, nil
}

type GenerateKitResponse struct {
	ID  int64            `json:"id,string"`
	Kit model.KitContent `json:"kit"`
}
