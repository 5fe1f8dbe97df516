// seehuhn.de/go/gradient - log-axis colour gradient images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tables

// redRamp fades from white to red.  The last stop lies slightly beyond the
// end of the default axis.
var redRamp = Definition{
	Name: "redramp",
	Stops: map[float64]string{
		0.0:               "255,255,255",
		0.003814567556847: "255,255,255",
		0.012052403801856: "255,227,227",
		0.029122709238268: "255,198,198",
		0.056400676538509: "255,170,170",
		0.089827122095269: "255,142,142",
		0.148045641643703: "255,113,113",
		0.215713883121917: "255,85,85",
		0.315637932936843: "255,57,57",
		0.379515881573211: "255,0,0",
		0.602678321028618: "255,0,0",
	},
}

var rgb = Definition{
	Name: "rgb",
	Stops: map[float64]string{
		0.0: "255,0,0",
		0.5: "0,255,0",
		1.0: "0,0,255",
	},
}

var whiteRed = Definition{
	Name: "whitered",
	Stops: map[float64]string{
		0.0: "255,255,255",
		0.6: "255,0,0",
	},
}
