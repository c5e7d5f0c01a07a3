package classify

import (
	"github.com/csmtools/stylelens/internal/principle"
)

// SeedEntry is one starting rule association. Seed tables are ordered:
// a later entry for the same rule wins, the same as any other Add.
type SeedEntry struct {
	Rule      string
	Principle principle.Principle
}

// DefaultSeed returns the baked-in starting associations between
// Google-convention Checkstyle rules and CSM principles. The table is
// advisory configuration data, not a contract: operators may override,
// extend, or clear it before analysis begins.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		// Clear Layout.
		{"NoLineWrap", principle.ClearLayout},
		{"CustomImportOrder", principle.ClearLayout},
		{"OneTopLevelClass", principle.ClearLayout},
		{"OverloadMethodsDeclarationOrder", principle.ClearLayout},
		{"ConstructorsDeclarationGrouping", principle.ClearLayout},
		{"RegexpSinglelineJava", principle.ClearLayout},
		{"LineLength", principle.ClearLayout},
		{"OperatorWrap", principle.ClearLayout},
		{"SeparatorWrap", principle.ClearLayout},
		{"VariableDeclarationUsageDistance", principle.ClearLayout},
		{"AnnotationLocation", principle.ClearLayout},
		{"InvalidJavadocPosition", principle.ClearLayout},
		{"CommentsIndentation", principle.ClearLayout},
		{"PackageName", principle.ClearLayout},

		// Explanatory Language.
		{"OuterTypeFilename", principle.ExplanatoryLanguage},
		{"FileTabCharacter", principle.ExplanatoryLanguage},
		{"IllegalTokenText", principle.ExplanatoryLanguage},
		{"AvoidEscapedUnicodeCharacters", principle.ExplanatoryLanguage},
		{"AvoidStarImport", principle.ExplanatoryLanguage},
		{"FallThrough", principle.ExplanatoryLanguage},
		{"TodoComment", principle.ExplanatoryLanguage},
		{"UpperEll", principle.ExplanatoryLanguage},
		{"CatchParameterName", principle.ExplanatoryLanguage},
		{"TypeName", principle.ExplanatoryLanguage},
		{"MethodName", principle.ExplanatoryLanguage},

		// Simple Constructs.
		{"MultipleVariableDeclarations", principle.SimpleConstructs},

		// Be Consistent.
		{"EmptyLineSeparator", principle.BeConsistent},
		{"NeedBraces", principle.BeConsistent},
		{"LeftCurly", principle.BeConsistent},
		{"RightCurly", principle.BeConsistent},
		{"Indentation", principle.BeConsistent},
		{"OneStatementPerLine", principle.BeConsistent},
		{"WhitespaceAround", principle.BeConsistent},
		{"GenericWhitespace", principle.BeConsistent},
		{"MethodParamPad", principle.BeConsistent},
		{"ParenPad", principle.BeConsistent},
		{"WhitespaceAfter", principle.BeConsistent},
		{"NoWhitespaceBefore", principle.BeConsistent},
		{"NoWhitespaceBeforeCaseDefaultColon", principle.BeConsistent},
		{"MatchXpath", principle.BeConsistent},
		{"ArrayTypeStyle", principle.BeConsistent},
		{"ModifierOrder", principle.BeConsistent},

		// Congruent Implementation.
		{"EmptyCatchBlock", principle.CongruentImplementation},
	}
}
