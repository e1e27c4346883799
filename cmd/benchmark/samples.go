package main

// Sample is one benchmark document.
type Sample struct {
	Name string
	Text string
}

// ReviewChecklist is sent as the checklist when benchmarking /run_review.
const ReviewChecklist = `Administrative
- [ ] Cover letter and CDRH premarket review submission cover sheet
- [ ] Indications for use statement
- [ ] 510(k) summary or statement
- [ ] Truthful and accuracy statement

Device description
- [ ] Principles of operation
- [ ] Materials and patient-contacting components
- [ ] Substantial equivalence comparison table

Performance testing
- [ ] Biocompatibility per ISO 10993-1
- [ ] Electrical safety and EMC (IEC 60601-1, IEC 60601-1-2)
- [ ] Software documentation level
- [ ] Sterilization and shelf life`

// Samples are submission excerpts of increasing length.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "The Model 200 pulse oximeter is substantially equivalent to the predicate K123456 in intended use and technology.",
	},
	{
		Name: "short",
		Text: `Device name: Model 200 Fingertip Pulse Oximeter
Classification: Class II, 21 CFR 870.2700, product code DQA
Predicate: K123456, Acme SpO2 Monitor

Indications for use: The device is intended for spot-check measurement of functional oxygen
saturation (SpO2) and pulse rate in adult patients in hospitals and home environments.

Technological characteristics: two-wavelength LED emitter, photodiode receiver, and a
microcontroller running the SpO2 algorithm. Powered by two AAA batteries.`,
	},
	{
		Name: "medium",
		Text: `1. Submitter information
Acme Medical Devices, Inc., 100 Main Street, Springfield. Contact: Regulatory Affairs Manager.

2. Device identification
Trade name: Model 200 Fingertip Pulse Oximeter. Common name: oximeter. Regulation 21 CFR 870.2700,
Class II, product code DQA, review panel Cardiovascular.

3. Predicate device
K123456, Acme SpO2 Monitor. The predicate has not been subject to a design-related recall.

4. Device description
The Model 200 is a battery-powered, non-invasive fingertip oximeter. The sensor housing is made of
polycarbonate and the finger pad is medical-grade silicone. The display is a two-digit OLED that shows
SpO2, pulse rate and a perfusion bar graph. No data is stored or transmitted.

5. Comparison of technological characteristics
Both devices use red (660 nm) and infrared (905 nm) light, transmissive measurement and the same
SpO2 accuracy claim of +/-2% over 70-100%. The subject device differs in housing material and display
technology. These differences do not raise different questions of safety and effectiveness.

6. Performance data
Biocompatibility testing per ISO 10993-5 and ISO 10993-10 on the finger pad. Electrical safety per
IEC 60601-1 and EMC per IEC 60601-1-2. Clinical accuracy study per ISO 80601-2-61 with 12 subjects
under induced hypoxia, Arms 1.8%.`,
	},
	{
		Name: "long",
		Text: `Section 1: Cover letter
This traditional 510(k) premarket notification is submitted for the Model 200 Fingertip Pulse Oximeter.
We request that FDA find the device substantially equivalent to the legally marketed predicate K123456.

Section 2: Indications for use
The Model 200 is indicated for non-invasive spot-check measurement of functional oxygen saturation of
arterial hemoglobin (SpO2) and pulse rate. It is intended for adult patients weighing more than 40 kg in
hospitals, clinics and home environments. It is not intended for continuous monitoring.

Section 3: Device description
The device consists of a spring-hinged clip housing, an optical sensor module, a main board with a
32-bit microcontroller, an OLED display and a battery compartment. Patient-contacting materials are the
silicone finger pad (limited duration, intact skin) and the polycarbonate housing (limited duration,
intact skin). The firmware implements signal acquisition, ambient light rejection, motion detection and
the ratio-of-ratios SpO2 calculation.

Section 4: Substantial equivalence discussion
Intended use: identical. Indications: the subject device adds home use, supported by usability testing.
Principle of operation: identical two-wavelength transmissive oximetry. Accuracy: identical claim.
Materials: different, addressed by biocompatibility testing. Display: OLED versus LED, addressed by
usability and electrical safety testing.

Section 5: Software
The software was developed under IEC 62304. The documentation level is Basic. Provided: software
description, risk management file, software requirements specification, architecture design chart,
verification and validation summary, and revision level history. Cybersecurity is not applicable since
the device has no wired or wireless connectivity.

Section 6: Biocompatibility
Cytotoxicity, sensitization and irritation were evaluated per ISO 10993-5, -10 and -23. All tests passed.

Section 7: Electrical safety and EMC
Tested by an accredited laboratory to IEC 60601-1, IEC 60601-1-2 and IEC 60601-1-11 for home use.

Section 8: Performance testing
Bench testing per ISO 80601-2-61 covered accuracy with a simulator, low perfusion and motion.
The clinical desaturation study enrolled 12 healthy adults with a range of skin pigmentation and
reported Arms of 1.8% over 70-100% SpO2.

Section 9: Labeling
Draft labeling includes the instructions for use, device label and carton label.`,
	},
}

// QualitySamples are short, messy inputs used to eyeball output quality.
var QualitySamples = []Sample{
	{
		Name: "notes",
		Text: "predicate K123456 same tech. new: silicone pad, OLED. tests done iso10993-5/10, 60601-1, -1-2. clinical arms 1.8",
	},
	{
		Name: "mixed-order",
		Text: `Performance: ISO 80601-2-61 bench + clinical.
Indications for use: spot-check SpO2 adults.
Device name: Model 200.
Labeling draft attached.
Software: IEC 62304, basic documentation.`,
	},
	{
		Name: "checklist-like",
		Text: `[x] cover letter
[ ] 510k summary
[x] IFU statement
[ ] sterilization (n/a? device non-sterile)
[x] biocomp`,
	},
}
