package deck

// OutputFile is the file name the report deck is written to by default.
const OutputFile = "Data_Mining_Betrugserkennung_Praesentation.pptx"

// FraudDetection builds the CRISP-DM report deck on fraud detection in
// e-commerce orders. The figures are transcribed from a KNIME analysis and
// are not computed here. Every call returns a fresh deck with identical
// content.
func FraudDetection() *Deck {
	d := New("Data Mining: Betrugserkennung", "Data Mining Team")

	d.AddTitleSlide(
		"Data Mining: Betrugserkennung",
		"Klassifikation von E-Commerce Bestellungen",
	)

	d.AddContentSlide("Agenda",
		B(0, "1. Einführung und Problemstellung"),
		B(0, "2. Datenanalyse und -vorbereitung (CRISP-DM)"),
		B(0, "3. Attributanalyse und Feature Engineering"),
		B(0, "4. Modellauswahl und Training"),
		B(0, "5. Modellbewertung und Optimierung"),
		B(0, "6. Vorhersage und Fazit"),
	)

	d.AddContentSlide("1. Einführung und Problemstellung",
		B(0, "Szenario: Betrugserkennung im Online-Handel"),
		B(1, "Herausforderung: Ware gegen Geld nicht direkt umsetzbar"),
		B(1, "Risiko: Bestellungen ohne Zahlungseingang"),
		B(0, "Data Mining Aufgabe:"),
		B(1, "Typ: Klassifikationsproblem (Überwachtes Lernen)"),
		B(1, "Zielattribut: TARGET_BETRUG (diskret: ja/nein)"),
		B(0, "Datensatz: 30.000 E-Commerce Bestellungen"),
		B(1, "Training: 24.000 Datensätze (80% - Holdout-Methode)"),
		B(1, "Test: 6.000 Datensätze (20%)"),
		B(1, "Klassifizierung: 20.000 neue Bestellungen"),
	)

	d.AddContentSlide("2. Datenanalyse (CRISP-DM: Data Understanding)",
		B(0, "Explorative Datenanalyse der Trainingsdaten:"),
		B(1, "30.000 Bestellungen mit 43 Attributen"),
		B(1, "Zielattribut TARGET_BETRUG analysiert"),
		B(0, "Zentrale Erkenntnis: Stark unbalancierte Klassen"),
		B(1, "Nur 1.746 Betrugsfälle (5,82%)"),
		B(1, "28.254 legitime Bestellungen (94,18%)"),
		B(0, "Implikation für Data Mining:"),
		B(1, "❌ Accuracy allein als Gütemaß ungeeignet"),
		B(1, "✓ Precision & Recall sind entscheidend"),
		B(1, "Modell könnte \"immer nein\" vorhersagen (94% Accuracy!)"),
		B(1, "→ Betrugsfälle würden nicht erkannt werden"),
	)

	d.AddContentSlide("3. Attributanalyse & Feature Engineering (Data Preparation)",
		B(0, "Analyse der Artikelnummer-Attribute (ANUMMER_01 bis ANUMMER_10):"),
		B(1, "Repräsentieren bestellte Artikel (Artikelnummern)"),
		B(1, "Datentyp: Diskret (kategorisch)"),
		B(0, "Identifizierte Probleme:"),
		B(1, "❌ Limitation: Maximal 10 Artikel erfassbar"),
		B(1, "❌ Bei >10 Artikeln: Datenverlust"),
		B(1, "❌ ANUMMER_02 bis ANUMMER_10 größtenteils NULL"),
		B(1, "❌ Hohe Dimensionalität mit vielen Leereinträgen"),
		B(0, "Feature Engineering - Optimierungsansatz:"),
		B(1, "✓ Zusammenführung zu ANUMMER_LIST (aggregiert)"),
		B(1, "✓ Reduzierung der Dimensionalität (10→1 Attribut)"),
		B(1, "✓ Bessere Datenqualität für ML-Algorithmen"),
	)

	d.AddContentSlide("4. Modellauswahl und Training (CRISP-DM: Modeling)",
		B(0, "Implementierung: KNIME Analytics Platform"),
		B(0, "Trainingsmethode: Holdout-Methode"),
		B(1, "80% Trainingsdaten (24.000 Datensätze)"),
		B(1, "20% Testdaten (6.000 Datensätze)"),
		B(0, "Drei Klassifikationsverfahren (Überwachtes Lernen):"),
		B(1, "1. Decision Tree (Entscheidungsbaum, Gini Index)"),
		B(2, "Trennscharfe Entscheidungsregeln"),
		B(1, "2. Logistic Regression (Logistische Regression)"),
		B(2, "Lineare Trennung der Klassen"),
		B(1, "3. Naive Bayes Classifier"),
		B(2, "Probabilistischer Ansatz, bedingte Wahrscheinlichkeiten"),
	)

	d.AddContentSlide("5. Modellbewertung (CRISP-DM: Evaluation)",
		B(0, "Bewertung mit Konfusionsmatrix:"),
		B(1, "True Positive (TP): Betrug korrekt als Betrug erkannt"),
		B(1, "True Negative (TN): Kein Betrug korrekt als legitim erkannt"),
		B(1, "False Positive (FP): Legitim fälschlich als Betrug erkannt"),
		B(1, "False Negative (FN): Betrug fälschlich als legitim erkannt"),
		B(0, "Gütekriterien:"),
		B(1, "Accuracy = (TP+TN) / Gesamt"),
		B(2, "Gesamtgenauigkeit aller Vorhersagen"),
		B(1, "Precision = TP / (TP+FP)"),
		B(2, "Wie viele Betrugsvorhersagen waren korrekt?"),
		B(1, "Recall = TP / (TP+FN)"),
		B(2, "Wie viele Betrugsfälle wurden erkannt?"),
	)

	d.AddTableSlide("5a. Decision Tree - Confusion Matrix",
		[][]string{
			{"", "Predicted: nein", "Predicted: ja"},
			{"Actual: nein", "5466 (TN)", "193 (FP)"},
			{"Actual: ja", "300 (FN)", "36 (TP)"},
		},
		3.0, 2.5, 2.5,
	)

	d.AddContentSlide("5a. Decision Tree - Metriken",
		B(0, "Berechnete Gütekriterien:"),
		B(1, "Accuracy: 91,78% = (5466+36) / 6000"),
		B(1, "Precision: 15,72% = 36 / (36+193)"),
		B(1, "Recall: 9,33% = 36 / (36+300)"),
		B(0, "Interpretation:"),
		B(1, "✓ Erkennt tatsächlich Betrugsfälle (36 TP)"),
		B(1, "✓ Besser als \"immer nein\" Baseline"),
		B(1, "⚠ Hohe False-Positive Rate (193 Fehlalarme)"),
		B(1, "⚠ Niedriger Recall (300 FN, 89% nicht erkannt)"),
		B(0, "Bewertung: Einziges Modell mit relevantem Recall"),
	)

	d.AddContentSlide("5b. Logistic Regression - Ergebnisse",
		B(0, "Confusion Matrix:"),
		B(1, "TN: 5666, FP: 0, FN: 336, TP: 0"),
		B(1, "Alle Vorhersagen: \"nein\" (kein Betrug)"),
		B(0, "Berechnete Metriken:"),
		B(1, "Accuracy: 94,40% = 5666 / 6000"),
		B(1, "Precision: 0% (keine Betrugsvorhersagen)"),
		B(1, "Recall: 0% = 0 / 336 (alle Betrugsfälle übersehen)"),
		B(0, "❌ Fazit: Modell unbrauchbar für Betrugserkennung"),
		B(1, "Paradox: Hohe Accuracy durch Class Imbalance"),
		B(1, "Modell hat aus Unbalance gelernt, immer \"nein\" zu sagen"),
		B(1, "Kein einziger Betrugsfall erkannt (0 TP)"),
	)

	d.AddContentSlide("5c. Naive Bayes - Ergebnisse",
		B(0, "Confusion Matrix:"),
		B(1, "TN: 5663, FP: 3, FN: 333, TP: 3"),
		B(0, "Berechnete Metriken:"),
		B(1, "Accuracy: 94,44% = (5663+3) / 6000"),
		B(1, "Precision: 50,00% = 3 / (3+3)"),
		B(1, "Recall: 0,89% = 3 / (3+333)"),
		B(0, "Bewertung:"),
		B(1, "✓ Hohe Precision bei Betrugsvorhersagen (50%)"),
		B(1, "✓ Sehr wenig Fehlalarme (nur 3 FP)"),
		B(1, "❌ Extrem niedriger Recall (0,89%)"),
		B(1, "❌ Erkennt fast keine Betrugsfälle (nur 3 von 336)"),
		B(0, "Fazit: Zu konservativ, praktisch unbrauchbar"),
	)

	d.AddTableSlide("5d. Vergleichende Modellbewertung",
		[][]string{
			{"Modell", "Accuracy", "Precision", "Recall", "TP", "Bewertung"},
			{"Decision Tree", "91,78%", "15,72%", "9,33%", "36", "⭐ GEWÄHLT"},
			{"Logistic Regression", "94,40%", "0%", "0%", "0", "❌ Unbrauchbar"},
			{"Naive Bayes", "94,44%", "50,00%", "0,89%", "3", "⚠ Zu konservativ"},
		},
		2.3, 1.3, 1.3, 1.3, 0.8, 2.0,
	)

	d.AddContentSlide("5e. Maßnahmen zur Ergebnisverbesserung",
		B(0, "Hauptproblem: Class Imbalance (5,82% Betrug)"),
		B(0, "Resampling-Techniken:"),
		B(1, "Undersampling: Reduzierung der Mehrheitsklasse"),
		B(2, "Zufällige Auswahl von legitimen Bestellungen"),
		B(1, "SMOTE (Synthetic Minority Over-sampling Technique)"),
		B(2, "Synthetische Generierung zusätzlicher Betrugsfälle"),
		B(0, "Algorithmus-Optimierung:"),
		B(1, "Hyperparameter-Tuning (Complexity_Penalty, Minimum_Support)"),
		B(1, "Cost-Sensitive Learning (höhere Kosten für FN)"),
		B(0, "Weitere Ansätze:"),
		B(1, "Ensemble-Methoden (Random Forest, XGBoost)"),
		B(1, "Feature Engineering (ANUMMER_LIST verwenden)"),
	)

	d.AddContentSlide("6. Vorhersage (CRISP-DM: Deployment)",
		B(0, "Gewähltes Modell für Produktivbetrieb:"),
		B(1, "✓ Decision Tree (Entscheidungsbaum)"),
		B(0, "Begründung der Auswahl:"),
		B(1, "Einziges Modell mit relevantem Recall (9,33%)"),
		B(1, "Erkennt tatsächlich Betrugsfälle (36 TP)"),
		B(1, "Trade-off: Niedrigere Accuracy, aber Betrugserkennnung"),
		B(0, "Anwendung auf Klassifizierungsdaten:"),
		B(1, "20.000 neue Bestellungen klassifiziert"),
		B(1, "Datei: Klassifizierungsdaten-tree-predictions.csv"),
		B(0, "Kritische Einschätzung:"),
		B(1, "Performance noch verbesserungswürdig"),
		B(1, "Optimierungsmaßnahmen empfohlen (Resampling, etc.)"),
	)

	d.AddContentSlide("Zusammenfassung und Ausblick",
		B(0, "Zentrale Erkenntnisse:"),
		B(1, "Class Imbalance größte Herausforderung bei Betrugserkennung"),
		B(1, "Accuracy irreführend bei unbalancierten Daten"),
		B(1, "Precision & Recall entscheidende Gütekriterien"),
		B(1, "CRISP-DM-Prozess systematisch durchgeführt"),
		B(0, "Durchgeführte Schritte:"),
		B(1, "✓ Data Understanding (Class Imbalance identifiziert)"),
		B(1, "✓ Data Preparation (ANUMMER Feature Engineering)"),
		B(1, "✓ Modeling (3 Klassifikationsverfahren trainiert)"),
		B(1, "✓ Evaluation (Konfusionsmatrix, Metriken)"),
		B(1, "✓ Deployment (Decision Tree für Vorhersage gewählt)"),
		B(0, "Vielen Dank für Ihre Aufmerksamkeit!"),
	)

	return d
}

// CRISPDMOutline lists the report structure printed after generation.
func CRISPDMOutline() []string {
	return []string{
		"1. Einführung und Problemstellung",
		"2. Data Understanding (Class Imbalance)",
		"3. Data Preparation (Feature Engineering)",
		"4. Modeling (3 Klassifikationsverfahren)",
		"5. Evaluation (Konfusionsmatrix, Metriken)",
		"6. Deployment (Vorhersage)",
	}
}
