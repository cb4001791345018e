package prompt

import "fmt"

// responsePrefix is the fixed requirements block embedded at the top of the
// generated document. It is part of the document template, not of the
// instruction itself.
func responsePrefix(framework, componentLibrary string) string {
	structure := "functional components"
	styling := "a corresponding CSS module"
	if framework == "Vue" {
		structure = "Vue Single File Components (`.vue`) with (`<template>`, `<script>`, `<style scoped>`)"
		styling = "`<style scoped>`"
	}
	return fmt.Sprintf(`
    Create detailed %[1]s components with these requirements:
    **Core Technical & Project Requirements:**
    1.  **Structure & Language:** Use %[3]s. Default to JavaScript for logic.
    2.  **Component Library:**
        *   **Primary:** Prioritize components from the selected library: **%[2]s**. All standard elements (forms, tables, buttons, etc.) should use components from this library.
    3.  **Custom Styling:** Use custom CSS/SCSS in %[4]s ONLY for fine-tuning or when library components do not suffice.
    4.  **Icons:** Prioritize the selected library's icon system.
    5.  **Code Quality & Conventions:**
        *   Generate complete, functional code for the target framework.
        *   Strictly adhere to existing code formatting and naming conventions (components: PascalCase, props/methods: camelCase, CSS: kebab-case).
        *   Follow proper import practices for all modules.
    `, framework, componentLibrary, structure, styling)
}

// InitialSystem builds the system instruction for turning a UI screenshot
// into the first version of the document. The document it asks for has the
// fixed three-section shape every later refinement preserves.
func InitialSystem(framework, componentLibrary, appType string) string {
	return fmt.Sprintf(`You are an expert frontend developer. Your task is to analyze a UI image and generate a comprehensive, actionable prompt for another frontend developer to implement that UI within an enterprise %[1]s %[3]s project. This project heavily uses a component library named '%[2]s'.
    **Important Notes:**
    1. Use JavaScript by default for all component implementations.
    2. Only switch to TypeScript if explicitly requested by the user.
    3. Follow standard %[1]s practices for component structure, props, data, methods, etc.
    4. **The language of your generated response (the entire prompt including summary, analysis, and planning) MUST match the primary language of the text visible in the provided image. For example, if the image contains primarily Chinese text, your entire response should be in Chinese. If it's English, respond in English.**

    the generated prompt should contain the following parts:

    0. <response_prefix>
    1. <summary_title>
    2. <image_analysis>
    3. <development_planning>

    this part is a prefix of the response, you should follow the following content, most of time do not need to change it.

    %[4]s

    ### summary_title

    Generate a concise, descriptive title for the page or feature depicted in the image, reflecting its primary function within the application.

    ### image_analysis

    Analyze the provided image meticulously and describe its visual components, their properties, and their relationships in detail. Focus on elements relevant for UI implementation:

    1.  **Primary Purpose/Goal:** Briefly state the main objective or function of the UI depicted in the image.
    2.  **Navigation Elements:** Identify ALL visible navigation components (sidebars, top bars, tab bars, breadcrumbs, pagination). Describe their items, icons, labels, and apparent purpose.
    3.  **Overall Page Layout:** Describe the high-level structure and arrangement of major sections, including alignment and spacing where discernible.
    4.  **Content Sections & Blocks:** Detail each distinct block of content within the main area: its purpose, child elements, and their arrangement.
    5.  **Interactive Controls & Forms:** List ALL interactive elements (buttons with variants, inputs, dropdowns, checkboxes, radios, toggles, sliders, links). For each, specify its label, placeholder, visible value, icons, and likely action. For forms, describe all fields, their types, labels, and validation hints.
    6.  **Text Content & Typography:** List all significant visible text and note font size, weight, color, and alignment where it stands out.
    7.  **Key Visual Elements & Graphics:** Note prominent images, icons (standard library vs. custom), charts, illustrations, logos, dividers, and their placement.
    8.  **Color Palette & Theme:** Detail the dominant palette and whether the theme appears light, dark, or custom.
    9.  **Data Display:** If data is shown (tables, lists, cards), describe its structure and the fields displayed.
    10. **Implicit Details & Interactions:** Infer non-obvious details or implied interactions (hover states, active tabs, menus behind avatars).

    ### development_planning

    Based on the image analysis and the assumption of an existing enterprise %[1]s + %[2]s codebase with established patterns, outline a development plan:

    1.  **File Structure & Organization:**
        *   **Page Creation Logic:** Default to creating a new page unless the user explicitly requests enhancement of an existing one. Treat the UI as a new independent functional area with its own route and file structure.
        *   **New Page Structure:** Create a feature directory with a main component, an api module for API calls, a config module for constants, and a components folder only if needed.

    2.  **Component Utilization Strategy (CRITICAL):**
        *   **Library First:** for ALL standard UI elements you MUST specify direct usage of components from '%[2]s'.
        *   **DO NOT suggest creating new custom component files for functionality readily available in the library.**
        *   **Criteria for new custom reusable components:** only if a UI segment is (a) highly complex and specific AND cannot be built by configuring library components, and (b) clearly reusable across multiple distinct pages. List any justified custom components.

    3.  **Key Features Implementation:** list the core functionalities to implement and how library components would be orchestrated for them.

    4.  **API Interaction:** briefly outline the necessary API calls, assuming the project's standard API interaction methods.

    5.  **Styling Approach:** reiterate primary reliance on '%[2]s' styles; note areas needing minimal custom scoped CSS.

    6.  **Responsiveness:** mention obvious responsive considerations and recommend library utilities or existing project conventions.
    `, framework, componentLibrary, appType, responsePrefix(framework, componentLibrary))
}

// InitialUserText is the user-message text that accompanies the source
// image on the first generation call.
func InitialUserText(appType, framework, componentLibrary string) string {
	return fmt.Sprintf("Analyze the provided image in detail. Generate a comprehensive and highly descriptive prompt for a frontend developer. This prompt should meticulously describe all visual components, their specific attributes (size, color, typography, spacing), their layout relationships, styling details, and any discernible interactive behaviors. The goal is to provide enough information for an accurate UI implementation of a %s application using the %s framework and the %s component library, based strictly on the visual information in the image. **Ensure the language of your entire output prompt matches the primary language of the text visible in the image.**", appType, framework, componentLibrary)
}
