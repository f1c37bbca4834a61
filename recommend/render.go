package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
)

const renderPromptFmt = `You are an expert car recommendation agent. Based on the user's question: "%s"

I have analyzed their needs and selected these top car recommendations:
%s

Please provide a comprehensive recommendation response that includes:
1. A brief analysis of their stated needs
2. Detailed explanation for each car and why it matches
3. Key advantages and considerations for each option
4. A final recommendation with reasoning

Format the response in a clear, engaging way with proper sections and bullet points.
Make it personal and helpful, as if you're a knowledgeable car advisor.`

// needMoreInfoResponse is returned when no catalog entry survives
// filtering, listing the criteria still needed for a useful answer.
const needMoreInfoResponse = `🚗 **Car Recommendation Service**

I couldn't find a match for your criteria yet. To provide the best recommendation, please tell me about:

**1. Budget** 💰 — what's your price range?
**2. Main Purpose** 🎯 — daily commuting, family trips, business, leisure?
**3. Passengers** 👥 — how many seats do you need?

Please share these details and I'll recommend the perfect cars for you!`

// renderWithLLM asks the model for a prose recommendation.
func (r *Recommender) renderWithLLM(ctx context.Context, question string, ranked []core.Ranked) (string, error) {
	var info strings.Builder
	for i, pick := range ranked {
		entry := pick.Entry
		fmt.Fprintf(&info, `
%d. **%s**
   - Price: $%d-$%d
   - Fuel Economy: %s
   - Size: %s
   - Purposes: %s
   - Priorities: %s
   - Brand: %s
   - Safety: %s
   - Technology: %s
   - Style: %s
`,
			i+1, entry.Name,
			entry.PriceMinUSD, entry.PriceMaxUSD,
			entry.FuelEconomy,
			entry.Size,
			strings.Join(entry.Purposes, ", "),
			strings.Join(entry.Priorities, ", "),
			entry.BrandOrigin,
			entry.SafetyRating,
			entry.Technology,
			entry.Style)
	}

	resp, err := r.chatter.Chat(ctx, []ai.Message{
		ai.HumanMessage(fmt.Sprintf(renderPromptFmt, question, info.String())),
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("empty rendering response")
	}
	return resp.Content, nil
}

// renderTemplate formats the picks without the model.
func renderTemplate(ranked []core.Ranked) string {
	var b strings.Builder
	b.WriteString("🚗 **Car Recommendations Based on Your Needs**\n\n")

	for i, pick := range ranked {
		entry := pick.Entry
		fmt.Fprintf(&b, "**%d. %s** ($%d-$%d)\n", i+1, entry.Name, entry.PriceMinUSD, entry.PriceMaxUSD)
		fmt.Fprintf(&b, "   • **Why it fits:** Perfect for %s\n", strings.Join(entry.Purposes, ", "))
		fmt.Fprintf(&b, "   • **Fuel Economy:** %s\n", entry.FuelEconomy)
		fmt.Fprintf(&b, "   • **Size:** %s\n", entry.Size)
		fmt.Fprintf(&b, "   • **Key Features:** %s\n", entry.Technology)
		fmt.Fprintf(&b, "   • **Style:** %s\n\n", entry.Style)
	}

	fmt.Fprintf(&b, "**My Recommendation:** The **%s** would be my top choice based on your requirements. ", ranked[0].Entry.Name)
	b.WriteString("It offers the best balance of your priorities and budget.\n\n")
	b.WriteString("Would you like more details about any of these vehicles or have specific questions about features?")
	return b.String()
}
