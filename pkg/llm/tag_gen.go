package llm

import (
	"Plume/config"
	"Plume/pkg/log"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// FallbackTag 生成失败时的兜底标签，发布流程不能被打标失败阻塞
const FallbackTag = "general"

const (
	maxTags          = 5
	maxContentLength = 1000
)

var (
	splitRe   = regexp.MustCompile(`[,、\n]`)
	ordinalRe = regexp.MustCompile(`^[0-9]+\.\s*`)
	bulletRe  = regexp.MustCompile(`^[-*]\s*`)
	quoteRe   = regexp.MustCompile("[\"'`]")
)

type TagGenerator struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewTagGenerator(conf *config.LLM) *TagGenerator {
	opts := []option.RequestOption{option.WithAPIKey(conf.APIKey)}
	if conf.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.BaseURL))
	}
	return &TagGenerator{
		client:  openai.NewClient(opts...),
		model:   conf.Model,
		timeout: time.Duration(conf.Timeout()) * time.Second,
	}
}

// Generate 根据正文生成最多 5 个标签。
// 任何失败（网络、超时、响应为空、解析为空）都返回兜底标签，不向上抛错。
func (g *TagGenerator) Generate(ctx context.Context, content string) []string {
	prompt := buildPrompt(content)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	startTime := time.Now()
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.L.Error("failed to gen tag", zap.Error(err))
		return []string{FallbackTag}
	}
	if len(completion.Choices) == 0 {
		log.L.Error("gen tag: empty choices")
		return []string{FallbackTag}
	}

	reply := completion.Choices[0].Message.Content
	log.L.Info("gen tag", zap.String("reply", reply), zap.Duration("gen time", time.Since(startTime)))

	tags := ParseTags(reply)
	if len(tags) == 0 {
		return []string{FallbackTag}
	}
	return tags
}

// buildPrompt 截断正文到 1000 字符，控制外呼请求体大小
func buildPrompt(content string) string {
	runes := []rune(content)
	if len(runes) > maxContentLength {
		content = string(runes[:maxContentLength]) + "..."
	}
	return fmt.Sprintf(
		"从以下博客正文中生成最多5个贴切的标签，用逗号分隔输出，"+
			"每个标签是简洁的单词或短语，不要任何其他内容。\n\n正文: %s\n\n标签:",
		content,
	)
}

// ParseTags 解析模型回复：按逗号、顿号、换行切分，
// 去掉序号前缀、列表符号和引号，保留前 5 个非空结果
func ParseTags(input string) []string {
	parts := splitRe.Split(input, -1)

	tags := make([]string, 0, maxTags)
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		tag = ordinalRe.ReplaceAllString(tag, "")
		tag = bulletRe.ReplaceAllString(tag, "")
		tag = quoteRe.ReplaceAllString(tag, "")
		tag = strings.TrimSpace(tag)

		if tag != "" && len(tags) < maxTags {
			tags = append(tags, tag)
		}
	}
	return tags
}
