package action

import "github.com/Wyydra/callstate/internal/core/domain"

type NetworkQualityDiagnosticUpdated struct {
	Model domain.NetworkQualityDiagnosticModel
}

type NetworkDiagnosticUpdated struct {
	Model domain.NetworkDiagnosticModel
}

type MediaDiagnosticUpdated struct {
	Model domain.MediaDiagnosticModel
}

type DismissNetworkQualityDiagnostic struct {
	Diagnostic domain.NetworkQualityDiagnostic
}

type DismissNetworkDiagnostic struct {
	Diagnostic domain.NetworkDiagnostic
}

type DismissMediaDiagnostic struct {
	Diagnostic domain.MediaDiagnostic
}

func (NetworkQualityDiagnosticUpdated) Kind() Kind { return "diagnostics.networkQuality" }
func (NetworkDiagnosticUpdated) Kind() Kind        { return "diagnostics.network" }
func (MediaDiagnosticUpdated) Kind() Kind          { return "diagnostics.media" }
func (DismissNetworkQualityDiagnostic) Kind() Kind { return "diagnostics.dismissNetworkQuality" }
func (DismissNetworkDiagnostic) Kind() Kind        { return "diagnostics.dismissNetwork" }
func (DismissMediaDiagnostic) Kind() Kind          { return "diagnostics.dismissMedia" }

func (NetworkQualityDiagnosticUpdated) isAction() {}
func (NetworkDiagnosticUpdated) isAction()        {}
func (MediaDiagnosticUpdated) isAction()          {}
func (DismissNetworkQualityDiagnostic) isAction() {}
func (DismissNetworkDiagnostic) isAction()        {}
func (DismissMediaDiagnostic) isAction()          {}
