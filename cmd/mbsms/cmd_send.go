package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/supernova0730/mbsms/adapters/sms"
	"github.com/supernova0730/mbsms/adapters/sms/messagebird"
	"github.com/supernova0730/mbsms/mbErrs"
)

type sendFlagsSt struct {
	destinations []string
	sender       string
	reference    string
	responseType string
	timestamp    string
	timezone     string
	dlrUrl       string
	gateway      string
	gatewayId    int64
	replaceChars string
	inbox        bool
	voice        bool
	test         bool
	tariff       int64
	shortcode    int64
	keyword      string
	mid          string
	member       string
}

func sendCmd() *cobra.Command {
	f := &sendFlagsSt{}

	cmd := &cobra.Command{
		Use:   "send [flags] MESSAGE...",
		Short: "Send an sms to one or more destinations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.lg.Sync()

			if err = f.apply(app.client, cmd.Flags()); err != nil {
				return err
			}

			rep, err := app.client.SendSms(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			printRep(cmd.OutOrStdout(), rep)

			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func (f *sendFlagsSt) register(fl *pflag.FlagSet) {
	fl.StringSliceVarP(&f.destinations, "to", "d", nil, "destination MSISDN, repeatable or comma separated")
	fl.StringVarP(&f.sender, "sender", "s", "", "sender: up to 16 digits or 11 characters")
	fl.StringVar(&f.reference, "reference", "", "reference to link delivery reports")
	fl.StringVar(&f.responseType, "response-type", "", "XML, PLAIN or SIMPLE")
	fl.StringVar(&f.timestamp, "timestamp", "", "schedule time, e.g. 201303041530, \"2013-03-04 15:30\" or @1362411000")
	fl.StringVar(&f.timezone, "timezone", "", "IANA zone applied to --timestamp, e.g. Europe/Amsterdam")
	fl.StringVar(&f.dlrUrl, "dlr-url", "", "delivery report url")
	fl.StringVar(&f.gateway, "gateway", "", "route name: basic or business")
	fl.Int64Var(&f.gatewayId, "gateway-id", 0, "route id")
	fl.StringVar(&f.replaceChars, "replace-chars", "", "replace non GSM-7 characters: true or false")
	fl.BoolVar(&f.inbox, "inbox", false, "send from a MessageBird inbox number")
	fl.BoolVar(&f.voice, "voice", false, "send as a voice message")
	fl.BoolVar(&f.test, "test", false, "validate only, nothing is sent or charged")
	fl.Int64Var(&f.tariff, "tariff", 0, "premium: price in cents")
	fl.Int64Var(&f.shortcode, "shortcode", 0, "premium: shortcode")
	fl.StringVar(&f.keyword, "keyword", "", "premium: keyword")
	fl.StringVar(&f.mid, "mid", "", "premium: id of the message replied to")
	fl.StringVar(&f.member, "member", "", "premium: subscription membership flag")
}

func (f *sendFlagsSt) apply(c *messagebird.St, fl *pflag.FlagSet) error {
	for _, d := range f.destinations {
		c.AddDestination(d)
	}

	c.SetSender(f.sender)

	if f.reference != "" {
		c.SetReference(f.reference)
	}

	if f.responseType != "" {
		if err := c.SetResponseType(strings.ToUpper(f.responseType)); err != nil {
			return err
		}
	}

	if f.timestamp != "" {
		var loc *time.Location
		if f.timezone != "" {
			var err error
			if loc, err = time.LoadLocation(f.timezone); err != nil {
				return mbErrs.WithDesc(mbErrs.InvalidArgument, err.Error())
			}
		}
		if err := c.SetTimestampString(f.timestamp, loc); err != nil {
			return err
		}
	}

	if f.dlrUrl != "" {
		if err := c.SetDlrUrl(f.dlrUrl); err != nil {
			return err
		}
	}

	if f.gateway != "" {
		c.SetGateway(f.gateway)
	}
	if f.gatewayId != 0 {
		c.SetGatewayId(f.gatewayId)
	}

	if f.replaceChars != "" {
		if err := c.SetReplaceCharsString(f.replaceChars); err != nil {
			return err
		}
	}

	c.SetInbox(f.inbox)
	c.SetVoice(f.voice)
	c.SetTest(f.test)

	if fl.Changed("tariff") || fl.Changed("shortcode") || fl.Changed("keyword") {
		var mid, member *string
		if f.mid != "" {
			mid = &f.mid
		}
		if f.member != "" {
			member = &f.member
		}
		c.SetPremium(f.tariff, f.shortcode, f.keyword, mid, member)
	}

	return nil
}

func printRep(w io.Writer, rep *sms.RepSt) {
	if rep.Code == "" {
		fmt.Fprintf(w, "Response:\n%s\n", rep.Raw)
		return
	}

	fmt.Fprintf(w, "Response:\n%s\n%s\n", rep.Code, rep.Message)
	if d := rep.Description(); d != "" && d != rep.Message {
		fmt.Fprintf(w, "(%s)\n", d)
	}
}
