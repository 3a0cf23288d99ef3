package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	guardrailx "github.com/ndezwa/relego-support/agent/agents/guardrail"
	sessionx "github.com/ndezwa/relego-support/agent/agents/session"
	specialistx "github.com/ndezwa/relego-support/agent/agents/specialist"
	triagex "github.com/ndezwa/relego-support/agent/agents/triage"
	analyticsx "github.com/ndezwa/relego-support/agent/analytics"
	contractx "github.com/ndezwa/relego-support/agent/contract"
	customerx "github.com/ndezwa/relego-support/agent/customer"
	llmx "github.com/ndezwa/relego-support/agent/llm"
	promptx "github.com/ndezwa/relego-support/agent/prompt"
	toolx "github.com/ndezwa/relego-support/agent/tool"
	transcriptx "github.com/ndezwa/relego-support/agent/transcript"
	configx "github.com/ndezwa/relego-support/pkg/config"
	_ "github.com/ndezwa/relego-support/pkg/logger/autoload"
)

type AppConfig struct {
	CompanyName string `envconfig:"COMPANY_NAME" split_words:"true" default:"Relego AI Solutions"`
	DataDir     string `envconfig:"DATA_DIR" split_words:"true" default:"data"`
}

const highValueScoreNotice = 50

func main() {
	ctx := context.Background()
	appCfg := configx.MustNew[AppConfig]("")

	customers := customerx.NewStore()
	transcripts, err := transcriptx.Open(appCfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open transcript store")
	}
	defer transcripts.Close()

	manager, err := sessionx.New(customers, transcripts)
	if err != nil {
		log.Fatal().Err(err).Msg("build session manager")
	}
	reports := analyticsx.New(customers)
	prompts := promptx.LoadPromptSet()

	var registry contractx.Registry
	var inputScreen *guardrailx.InputScreen
	var outputScreen *guardrailx.OutputScreen

	llmCfg, err := configx.New[llmx.Config]("OPENROUTER")
	if err != nil {
		log.Warn().Err(err).Msg("openrouter config unavailable, running without model agents")
		inputScreen, _ = guardrailx.NewInputScreen(ctx, nil, prompts)
		outputScreen, _ = guardrailx.NewOutputScreen(ctx, nil, prompts)
	} else {
		registry, err = specialistx.NewRegistry(ctx, *llmCfg, toolx.Gateway{})
		if err != nil {
			log.Fatal().Err(err).Msg("build specialist registry")
		}

		guardCfg := llmCfg.OpenRouterForGuardrail()
		guardModel, err := guardCfg.New(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("create guardrail model")
		}
		inputScreen, err = guardrailx.NewInputScreen(ctx, guardModel, prompts)
		if err != nil {
			log.Fatal().Err(err).Msg("build input screen")
		}
		outputScreen, err = guardrailx.NewOutputScreen(ctx, guardModel, prompts)
		if err != nil {
			log.Fatal().Err(err).Msg("build output screen")
		}
	}

	identity, session, record, err := manager.GetOrCreateSession(ctx, "")
	if err != nil {
		log.Fatal().Err(err).Msg("create session")
	}

	fmt.Printf("Welcome to %s Customer Support!\n", appCfg.CompanyName)
	fmt.Println("Type 'exit' to quit, 'reset' for new conversation, 'analytics' for a report")
	fmt.Printf("\nSession ID: %s...\n", shortID(identity))
	fmt.Printf("Customer Type: %s\n", record.Tier)
	fmt.Printf("Lead Score: %d\n\n", record.LeadScore)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Printf("Thank you for contacting %s! Have a great day!\n", appCfg.CompanyName)
			return
		case "reset":
			identity, session, _, err = manager.GetOrCreateSession(ctx, "")
			if err != nil {
				log.Fatal().Err(err).Msg("reset session")
			}
			fmt.Printf("Starting new conversation...\nNew Session ID: %s...\n\n", shortID(identity))
			continue
		case "analytics":
			rep := reports.Report()
			fmt.Printf("Analytics: %d customers, %d qualified leads, avg score: %.1f\n\n",
				rep.TotalCustomers, rep.QualifiedLeads, rep.AverageScore)
			continue
		case "":
			continue
		}

		verdict, err := inputScreen.Screen(ctx, input)
		if err != nil {
			log.Error().Err(err).Msg("input screen")
			fmt.Println("Something went wrong, please try again.")
			continue
		}
		if !verdict.Allowed {
			printInputRefusal(appCfg.CompanyName, verdict.Reason)
			continue
		}

		intent, confidence := triagex.ClassifyIntent(input)
		agentType := triagex.AgentFor(intent)
		log.Debug().
			Str("intent", string(intent)).
			Float64("confidence", confidence).
			Str("agent", string(agentType)).
			Msg("routed inquiry")

		reply := answerWith(ctx, registry, agentType, input, identity, customers, appCfg.CompanyName)

		outVerdict, err := outputScreen.Screen(ctx, reply)
		if err != nil {
			log.Error().Err(err).Msg("output screen")
		}
		if err == nil && !outVerdict.Allowed {
			log.Warn().Str("reason", outVerdict.Reason).Msg("reply rejected by quality screen")
			reply = fallbackReply(appCfg.CompanyName, input)
		}

		fmt.Printf("Assistant: %s\n", reply)

		if err := session.Append(ctx, "user", input); err != nil {
			log.Error().Err(err).Msg("append user transcript line")
		}
		if err := session.Append(ctx, "assistant", reply); err != nil {
			log.Error().Err(err).Msg("append assistant transcript line")
		}

		result, err := manager.RecordInteraction(ctx, identity, input, reply, string(agentType))
		if err != nil {
			log.Error().Err(err).Msg("record interaction")
			fmt.Println()
			continue
		}

		if result.Score >= highValueScoreNotice {
			fmt.Printf("\nLead Score: %d | Status: %s\n", result.Score, result.Status)
		}
		if result.Escalate {
			fmt.Println("High-value lead - recommending escalation to the sales team")
			if _, err := customers.CreateTicket(identity,
				"High-value lead follow-up",
				fmt.Sprintf("Lead reached score %d after %q", result.Score, truncate(input, 50)),
				customerx.PriorityHigh,
				string(agentType),
			); err != nil {
				log.Error().Err(err).Msg("create escalation ticket")
			}
		}

		fmt.Println()
	}
}

// answerWith runs the routed specialist, falling back to a canned reply when
// no registry is configured or the specialist fails.
func answerWith(
	ctx context.Context,
	registry contractx.Registry,
	agentType contractx.AgentType,
	input, identity string,
	customers *customerx.Store,
	companyName string,
) string {
	if registry == nil {
		return fallbackReply(companyName, input)
	}
	spec, ok := registry.ForAgent(agentType)
	if !ok {
		return fallbackReply(companyName, input)
	}

	req := contractx.SpecialistRequest{
		UserMessage:     input,
		CustomerContext: customerContext(customers, identity),
	}
	resp, err := spec.Run(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("agent", string(agentType)).Msg("specialist run")
		return fallbackReply(companyName, input)
	}
	return resp.Message
}

func customerContext(customers *customerx.Store, identity string) string {
	record, err := customers.Get(identity)
	if err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "customer tier: %s; lead score: %d; lead status: %s; interactions: %d",
		record.Tier, record.LeadScore, record.LeadStatus, record.TotalInteractions)
	if len(record.RecentInquiries) > 0 {
		fmt.Fprintf(&b, "; recent inquiries: %s", strings.Join(record.RecentInquiries, " | "))
	}
	return b.String()
}

func fallbackReply(companyName, input string) string {
	return fmt.Sprintf("Thank you for your inquiry about %s. I'd be happy to help you with information about %s' services. Would you like me to connect you with one of our specialists for personalized assistance?",
		truncate(input, 50), companyName)
}

func printInputRefusal(companyName, reason string) {
	fmt.Println("I'm sorry, but I can't process that request.")
	fmt.Println("Our security systems detected content that violates our usage policies.")
	fmt.Println("Please ensure your message is:")
	fmt.Printf("- Related to %s services\n", companyName)
	fmt.Println("- Appropriate for customer support")
	fmt.Println("- Free from malicious content")
	fmt.Println("\nPlease rephrase your question and try again.")
	log.Warn().Str("reason", reason).Msg("input rejected by security screen")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func shortID(identity string) string {
	if len(identity) <= 8 {
		return identity
	}
	return identity[:8]
}
