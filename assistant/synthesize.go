package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/carvisor/carvisor/ai"
)

const (
	notSureResponse = "Tôi không chắc chắn về câu hỏi này. Bạn có thể hỏi lại bằng cách khác được không? 🤔"
	apologyResponse = "Tôi gặp lỗi khi xử lý tài liệu. Vui lòng thử lại hoặc đặt câu hỏi khác."
)

const docAnswerPromptFmt = `Dựa trên các tài liệu sau, hãy trả lời câu hỏi của người dùng bằng tiếng Việt một cách chi tiết và hữu ích.

Tài liệu tham khảo: %s

Câu hỏi: %s

Vui lòng trả lời bằng tiếng Việt với thông tin chính xác từ tài liệu.
Nếu tài liệu không chứa thông tin liên quan, hãy nói rõ ràng.`

// synthesize produces the final answer for a turn.
//
// Handlers that already set an answer (recommendation, news, guardrail,
// not-found) pass through unchanged. The document path asks the model to
// phrase prose over the retrieved context; a model failure yields a
// user-visible apology instead of an error.
func (a *Assistant) synthesize(ctx context.Context, turn Turn) Turn {
	if len(turn.ContextDocs) > 0 {
		contents := make([]string, 0, len(turn.ContextDocs))
		for _, result := range turn.ContextDocs {
			contents = append(contents, result.Document.Content)
		}
		docContext := strings.Join(contents, "\n")

		messages := make([]ai.Message, 0, 2*len(turn.History)+1)
		for _, exchange := range turn.History {
			messages = append(messages,
				ai.HumanMessage(exchange.Question),
				ai.AIMessage(exchange.Answer))
		}
		messages = append(messages, ai.HumanMessage(
			fmt.Sprintf(docAnswerPromptFmt, docContext, turn.Question)))

		resp, err := a.chatter.Chat(ctx, messages)
		if err != nil {
			a.logger.Error("answer synthesis failed", "error", err)
			turn.Answer = apologyResponse
			return turn
		}
		turn.Answer = resp.Content
		if strings.TrimSpace(turn.Answer) == "" {
			turn.Answer = notSureResponse
		}
		return turn
	}

	if turn.Answer != "" {
		return turn
	}

	turn.Answer = notSureResponse
	return turn
}
