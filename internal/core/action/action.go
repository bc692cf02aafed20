// Package action defines the closed set of events that drive the composite state.
//
// Every variant is an immutable value. Actions are produced by the host, by the calling
// service event adapter, and by middleware follow-ups, and are never mutated after
// dispatch.
package action

import "strings"

// Action is implemented only by the variants declared in this package.
type Action interface {
	Kind() Kind
	isAction()
}

// Kind is the stable name of an action variant in the form "<domain>.<name>".
type Kind string

// Domain returns the sub-domain the kind belongs to.
func (k Kind) Domain() Domain {
	d, _, _ := strings.Cut(string(k), ".")
	return Domain(d)
}

func (k Kind) String() string {
	return string(k)
}

// Domain is the sub-domain an action belongs to. Reducers subscribe to domains.
type Domain string

const (
	DomainComposite          Domain = "composite"
	DomainCalling            Domain = "calling"
	DomainLocalUser          Domain = "localUser"
	DomainPermission         Domain = "permission"
	DomainLifecycle          Domain = "lifecycle"
	DomainAudioSession       Domain = "audioSession"
	DomainNavigation         Domain = "navigation"
	DomainError              Domain = "error"
	DomainRemoteParticipants Domain = "remoteParticipants"
	DomainDiagnostics        Domain = "diagnostics"
	DomainCaptions           Domain = "captions"
	DomainRtt                Domain = "rtt"
	DomainToastNotification  Domain = "toastNotification"
	DomainButtonViewData     Domain = "buttonViewData"
	DomainHeader             Domain = "callScreenInfoHeader"
	DomainVisibility         Domain = "visibility"
)

// Domains lists every sub-domain.
func Domains() []Domain {
	return []Domain{
		DomainComposite,
		DomainCalling,
		DomainLocalUser,
		DomainPermission,
		DomainLifecycle,
		DomainAudioSession,
		DomainNavigation,
		DomainError,
		DomainRemoteParticipants,
		DomainDiagnostics,
		DomainCaptions,
		DomainRtt,
		DomainToastNotification,
		DomainButtonViewData,
		DomainHeader,
		DomainVisibility,
	}
}

// CompositeExit asks the composite to leave; it drives navigation to exit.
type CompositeExit struct{}

// CallingViewLaunched is dispatched once the call screen is shown.
type CallingViewLaunched struct{}

func (CompositeExit) Kind() Kind       { return "composite.exit" }
func (CallingViewLaunched) Kind() Kind { return "composite.callingViewLaunched" }

func (CompositeExit) isAction()       {}
func (CallingViewLaunched) isAction() {}
