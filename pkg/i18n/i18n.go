package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var messages = map[language.Tag][]*goi18n.Message{
	language.English: {
		{ID: ERROR_INTERNAL, Other: "Internal service error, please try again later"},
		{ID: ERROR_NOTFOUND, Other: "The requested content was not found"},
		{ID: ERROR_INVALIDARGUMENT, Other: "Invalid request arguments"},
		{ID: ERROR_UNAUTHORIZED, Other: "User not authenticated"},
		{ID: ERROR_FORBIDDEN, Other: "Operation not allowed"},
		{ID: ERROR_TOO_MANY_REQUESTS, Other: "Too many requests, slow down"},
		{ID: ERROR_EXIST, Other: "Resource already exists"},
		{ID: ERROR_INVALID_TOKEN, Other: "Invalid session token"},
		{ID: ERROR_INVALID_ACCOUNT, Other: "Incorrect username or PIN"},
		{ID: ERROR_ENTRY_EXISTS_TODAY, Other: "You have already written a journal entry today"},
	},
	language.SimplifiedChinese: {
		{ID: ERROR_INTERNAL, Other: "服务内部错误，请稍后重试"},
		{ID: ERROR_NOTFOUND, Other: "未找到相关内容"},
		{ID: ERROR_INVALIDARGUMENT, Other: "请求参数错误"},
		{ID: ERROR_UNAUTHORIZED, Other: "用户未登录"},
		{ID: ERROR_FORBIDDEN, Other: "无权进行该操作"},
		{ID: ERROR_TOO_MANY_REQUESTS, Other: "请求过于频繁"},
		{ID: ERROR_EXIST, Other: "资源已存在"},
		{ID: ERROR_INVALID_TOKEN, Other: "无效的会话凭证"},
		{ID: ERROR_INVALID_ACCOUNT, Other: "用户名或PIN码错误"},
		{ID: ERROR_ENTRY_EXISTS_TODAY, Other: "今天已经写过日记了"},
	},
}

type Localizer struct {
	localizers map[string]*goi18n.Localizer
}

func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	for tag, msgs := range messages {
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			panic(err)
		}
	}

	l := &Localizer{
		localizers: make(map[string]*goi18n.Localizer),
	}
	for _, lang := range langs {
		l.localizers[lang] = goi18n.NewLocalizer(bundle, lang)
	}
	if _, exist := l.localizers[DEFAULT_LANG]; !exist {
		l.localizers[DEFAULT_LANG] = goi18n.NewLocalizer(bundle, DEFAULT_LANG)
	}
	return l
}

// Get returns the localized message for key, falling back to the
// default language and finally to the key itself.
func (l *Localizer) Get(lang, key string) string {
	localizer, exist := l.localizers[lang]
	if !exist {
		localizer = l.localizers[DEFAULT_LANG]
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
