package schema

// defaultSchema is the production catalog for R&D funding business plans.
// Declaration order is load-bearing: it is the schema order used for
// validation output and completion runs.
var defaultSchema = MustNew([]Field{
	// Company information
	{Name: "COMPANY_NAME", Description: "Full legal name of your company/organization", Category: CategoryCompany},
	{Name: "COMPANY_CODE", Description: "Official company registration code or ID number", Category: CategoryCompany},
	{Name: "MANAGER_POSITION", Description: "Job title/position of the project manager", Category: CategoryCompany},
	{Name: "MANAGER_NAME", Description: "Full name of the project manager", Category: CategoryCompany},
	{Name: "COMPLETION_DATE", Description: "Expected project completion date (YYYY-MM-DD)", Category: CategoryCompany},
	{Name: "MAIN_ACTIVITY", Description: "Primary business activity or research focus", Category: CategoryCompany},
	{Name: "ACTIVITY_PERCENTAGE", Description: "Share of revenue from the main activity, in percent", Category: CategoryCompany},
	{Name: "CESE_CLASS", Description: "Economic activity classification code of the company", Category: CategoryCompany},
	{Name: "N_L_E", Category: CategoryCompany},
	{Name: "I_C", Category: CategoryCompany},
	{Name: "Sharehol", Description: "Shareholder structure of the company", Category: CategoryCompany},
	{Name: "A_S_Ns", Category: CategoryCompany},
	{Name: "SHARE_HS", Description: "Shareholdings held by the company in other entities", Category: CategoryCompany},
	{Name: "S_H", Category: CategoryCompany},
	{Name: "S_I", Category: CategoryCompany},
	{Name: "S_S", Category: CategoryCompany},
	{Name: "MANAGER_TITLE", Description: "Academic or professional title of the project manager", Category: CategoryCompany},
	{Name: "SUMMARY_1", Description: "Executive summary of the project", Category: CategoryCompany},
	{Name: "INNOVATIVENESS", Description: "What makes the product or service innovative", Category: CategoryCompany},
	{Name: "E_S_RES", Category: CategoryCompany},
	{Name: "E_S_R&D", Category: CategoryCompany},
	{Name: "E_S_R", Category: CategoryCompany},
	{Name: "A_S_RES", Category: CategoryCompany},
	{Name: "A_S_R&D", Category: CategoryCompany},
	{Name: "A_S_R", Category: CategoryCompany},
	{Name: "A_S_P", Category: CategoryCompany},
	{Name: "N_E", Description: "Total number of employees", Category: CategoryCompany},
	{Name: "N_R", Description: "Number of researchers employed", Category: CategoryCompany},
	{Name: "N_T", Description: "Number of technicians employed", Category: CategoryCompany},
	{Name: "N_W_T", Category: CategoryCompany},
	{Name: "N_P_T", Category: CategoryCompany},
	{Name: "LITERATURE_REVIEW", Description: "Review of scientific literature relevant to the project", Category: CategoryCompany},
	{Name: "IPR", Description: "Intellectual property rights situation and strategy", Category: CategoryCompany},
	{Name: "COMMERCIALIZATION", Description: "Plan for commercializing the project results", Category: CategoryCompany},
	{Name: "COLLABORATION", Description: "Research or industry collaborations for the project", Category: CategoryCompany},
	{Name: "LITERATURE_SOURCES", Description: "Bibliographic sources cited in the literature review", Category: CategoryCompany},
	{Name: "RD_JUSTIFICATION_1", Description: "R&D justification: scientific uncertainty addressed", Category: CategoryCompany},
	{Name: "RD_JUSTIFICATION_2", Description: "R&D justification: novelty of the approach", Category: CategoryCompany},
	{Name: "RD_JUSTIFICATION_3", Description: "R&D justification: systematic methodology", Category: CategoryCompany},
	{Name: "RD_JUSTIFICATION_4", Description: "R&D justification: transferability of results", Category: CategoryCompany},
	{Name: "RD_JUSTIFICATION_5", Description: "R&D justification: reproducibility of results", Category: CategoryCompany},
	{Name: "MARKET_ANALYSIS", Description: "Analysis of target market and opportunities", Category: CategoryCompany},
	{Name: "PRODUCT_PRICING", Description: "Planned pricing of the product or service", Category: CategoryCompany},
	{Name: "PRICING_JUSTIFICATION", Description: "Reasoning behind the planned pricing", Category: CategoryCompany},
	{Name: "RD_ACTIVITIES_PLAN", Description: "Planned R&D activities and their sequencing", Category: CategoryCompany},

	// Project details
	{Name: "PRODUCT_NAME", Description: "Name of the main product or service being developed", Category: CategoryProject},
	{Name: "JUS_PRO", Description: "Justification of the product concept", Category: CategoryProject},
	{Name: "NOVELTY_LEVEL", Description: "Novelty level of the product (company, market, or world first)", Category: CategoryProject},
	{Name: "JUS_R_D_I", Description: "Justification of the R&D and innovation character", Category: CategoryProject},
	{Name: "RD_PRIORITY", Description: "Smart-specialization R&D priority the project falls under", Category: CategoryProject},
	{Name: "RESEARCH_AREA", Description: "Scientific or technical research domain", Category: CategoryProject},
	{Name: "PROJECT_KEYWORDS", Description: "Key terms that describe your project (comma-separated)", Category: CategoryProject},
	{Name: "PROJECT_TYPE", Category: CategoryProject},
	{Name: "PROJECT_SUBTOPIC", Category: CategoryProject},
	{Name: "N_As", Category: CategoryProject},
	{Name: "F_Os", Category: CategoryProject},
	{Name: "S_Us", Category: CategoryProject},
	{Name: "W_R_Ds", Category: CategoryProject},
	{Name: "PRODUCTS_OFFERED", Description: "Products or services currently offered by the company", Category: CategoryProject},
	{Name: "PER_SALES", Description: "Share of sales expected from the new product, in percent", Category: CategoryProject},

	// Financial data
	{Name: "RD_BUDGET", Description: "Research & Development budget amount in EUR", Category: CategoryFinancial},
	{Name: "REVENUE_PROJECTION", Description: "Expected revenue from project in EUR", Category: CategoryFinancial},
	{Name: "REVENUE_RATIO", Description: "Projected revenue to R&D investment ratio", Category: CategoryFinancial},
	{Name: "RD_EXPENDITURE_2022", Description: "R&D expenditure in 2022, in EUR", Category: CategoryFinancial},
	{Name: "RD_EXPENDITURE_2023", Description: "R&D expenditure in 2023, in EUR", Category: CategoryFinancial},

	// Technical information
	{Name: "CURRENT_TPL", Description: "Current Technology Readiness Level (1-9)", Category: CategoryTechnical},
	{Name: "TARGET_TPL", Description: "Target Technology Readiness Level (1-9)", Category: CategoryTechnical},
	{Name: "TPL_JUSTIFICATION", Description: "Justification of the current and target readiness levels", Category: CategoryTechnical},
	{Name: "PROJECT_IMPACT_TITLE", Description: "Short title of the expected project impact", Category: CategoryTechnical},
	{Name: "PROJECT_START_MONTH", Description: "Project start month (YYYY-MM)", Category: CategoryTechnical},
	{Name: "PROJECT_COMPLETION_MONTH", Description: "Project completion month (YYYY-MM)", Category: CategoryTechnical},
	{Name: "PROJECT_IMPACT_DESCRIPTION", Description: "Description of the expected project impact", Category: CategoryTechnical},

	// Competition and jobs
	{Name: "COMPETITOR_M", Description: "Information about main competitors", Category: CategoryCompetition},
	{Name: "COMPETITOR_MARKET_SHARE", Description: "Market share held by the main competitors", Category: CategoryCompetition},
	{Name: "TOTAL_RESEARCH_JOBS", Description: "Total research positions tied to the project", Category: CategoryCompetition},
	{Name: "JOBS_DURING_PROJECT", Description: "Number of jobs created during project execution", Category: CategoryCompetition},
	{Name: "JOBS_AFTER_PROJECT", Description: "Number of jobs to be maintained after project completion", Category: CategoryCompetition},

	// Risk assessment
	{Name: "RISK_FACTORS", Description: "Potential risks and challenges for the project", Category: CategoryRisk},
	{Name: "MITIGATION_STRATEGIES", Description: "How the identified risks will be mitigated", Category: CategoryRisk},
	{Name: "SUCCESS_PROBABILITY", Description: "Estimated probability of project success", Category: CategoryRisk},
})

// Default returns the production field catalog.
func Default() Schema {
	return defaultSchema
}
